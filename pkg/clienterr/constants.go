package clienterr

const (
	MsgTitleRequired             = "titleRequired"
	MsgTaskIDRequired            = "taskIDRequired"
	MsgUnknownStatus             = "unknownStatus"
	MsgTransitionBackToPending   = "transitionBackToPending"
	MsgCompletedImmutable        = "completedImmutable"
	MsgTransitionStartInProgress = "transitionStartInProgress"
	MsgFailLoadTasks             = "failLoadTasks"
	MsgFailCreateTask            = "failCreateTask"
	MsgFailUpdateTask            = "failUpdateTask"
	MsgFailDeleteTask            = "failDeleteTask"
	MsgFailLogin                 = "failLogin"
	MsgFailSignup                = "failSignup"
)
