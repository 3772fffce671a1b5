package assistant

const Greeting = "Hi! I'm your task assistant. Ask me to add a task, show your list, or check your progress."

var greetings = []string{
	"Hello! 👋 I'm your task assistant.",
	"Hi there! Ready to get things done?",
	"Hey! Good to see you.",
	"Hello! Let's make today productive.",
}

var motivationTips = []string{
	"Small steps count. Finish one thing, then the next.",
	"Start with a two-minute task to build momentum.",
	"Progress, not perfection. Done beats perfect.",
	"Try a 25-minute focus block, then take a short break.",
	"Remove one distraction from your desk right now.",
}

var timeTips = []string{
	"Tackle your most important task first, while your energy is high.",
	"Use time blocks: give each task a fixed slot in your day.",
	"Set deadlines a little earlier than the real ones to leave a buffer.",
	"Sort by priority: urgent and important first, then important but not urgent.",
	"Batch small, similar tasks together to avoid context switching.",
}

var cannedFallbacks = []string{
	"I'm not sure I understood that. Try asking me to add a task, show your list, or check your progress.",
	"Interesting! I'm best with tasks: try \"add task: ...\" or \"show my tasks\".",
	"I didn't catch that. Say \"help\" to see what I can do.",
	"Hmm, I can't answer that one, but I can help you organize, plan and track your tasks.",
}

const (
	greetingEmptySuffix   = " Your slate is clean. Want to add your first task? Try \"add task: Buy groceries\"."
	greetingPendingSuffix = " You have %d pending task(s). Say \"show my tasks\" to see them."
	greetingAllDoneSuffix = " All %d of your tasks are done. 🎉"

	credentialHint = "\n\n(Set TASKCHAT_API_KEY to let me answer open-ended questions.)"

	addConfirm = "✅ Added \"%s\" to your list. You now have %d pending task(s)."
	addRetry   = "I couldn't tell which task to add. Try something like \"add task: Buy groceries\"."

	listEmpty      = "📭 Your list is empty. Add a task with \"add task: ...\"."
	listHeader     = "📋 Here are your pending tasks:"
	listNonePend   = "🎉 Nothing pending right now."
	listCompleted  = "✅ %d completed task(s)"
	completeNone   = "🎉 You have no pending tasks. Great job!"
	completeAsk    = "Which task did you finish? Pending: %s. Select it in the list and press space."
	deleteEmpty    = "🗑️ There's nothing to delete. Your list is empty."
	deleteAsk      = "Which task should I remove? Your tasks: %s. Select it in the list and press x."
	todoHelp       = "I can manage your to-do list. Try:\n• add task: Buy groceries\n• show my tasks\n• complete a task\n• delete a task"
	organizeIntro  = "🗂️ Let's get organized:\n1. Write down everything on your mind.\n2. Group related tasks together.\n3. Pick the three that matter most today.\n4. Schedule a time slot for each."
	organizeStats  = "\n\nRight now you have %d pending and %d completed task(s) out of %d."
	motivatePrefix = "💪 "
	motivateStats  = "\n\nYou've completed %d%% of your tasks so far. Keep it up!"
	timePrefix     = "⏰ "
	timeStats      = "\n\nYou currently have %d pending task(s)."
	breakdownGuide = "🧩 Big tasks feel lighter in pieces:\n1. Write the end result in one sentence.\n2. List the steps needed to get there.\n3. Make each step small enough to finish in under an hour.\n4. Add the first step as a task and start there."

	progressEmpty    = "📋 You don't have any tasks yet. Add one with \"add task: ...\" to start tracking progress."
	progressStart    = "🚀 You have %d task(s) and you're ready to start! Pick one and dive in."
	progressAllDone  = "🎉 Congratulations! You've completed all %d task(s)."
	progressAlmost   = "🔥 Almost there! %d of %d tasks done (%d%%)."
	progressKeepGoin = "📈 Keep going! %d of %d tasks done (%d%%)."

	helpText = "Here's what I can do:\n• Manage tasks: \"add task: ...\", \"show my tasks\"\n• Organize and plan your day\n• Motivation and focus tips\n• Break down complex work\n• Time management advice\n• Progress reports: \"how's my progress?\""
)
