package assistant

import "fmt"

func (a *Assistant) organize() string {
	st := a.store.Stats()
	if st.Total == 0 {
		return organizeIntro
	}
	return organizeIntro + fmt.Sprintf(organizeStats, st.Pending, st.Completed, st.Total)
}

func (a *Assistant) motivate() string {
	reply := motivatePrefix + a.picker.Pick(motivationTips)
	if st := a.store.Stats(); st.Total > 0 {
		reply += fmt.Sprintf(motivateStats, st.Percent())
	}
	return reply
}

func (a *Assistant) timeManagement() string {
	reply := timePrefix + a.picker.Pick(timeTips)
	if st := a.store.Stats(); st.Total > 0 {
		reply += fmt.Sprintf(timeStats, st.Pending)
	}
	return reply
}

func (a *Assistant) greet() string {
	reply := a.picker.Pick(greetings)
	st := a.store.Stats()
	switch {
	case st.Total == 0:
		return reply + greetingEmptySuffix
	case st.Pending == 0:
		return reply + fmt.Sprintf(greetingAllDoneSuffix, st.Total)
	default:
		return reply + fmt.Sprintf(greetingPendingSuffix, st.Pending)
	}
}
