package assistant

import "fmt"

func (a *Assistant) progress() string {
	st := a.store.Stats()
	switch {
	case st.Total == 0:
		return progressEmpty
	case st.Completed == 0:
		return fmt.Sprintf(progressStart, st.Total)
	case st.Completed == st.Total:
		return fmt.Sprintf(progressAllDone, st.Total)
	// The tier follows the rounded percentage shown in the reply.
	case st.Percent() >= 70:
		return fmt.Sprintf(progressAlmost, st.Completed, st.Total, st.Percent())
	default:
		return fmt.Sprintf(progressKeepGoin, st.Completed, st.Total, st.Percent())
	}
}
