package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDownload = "\uf019" // download
	IconClock    = "\uf017" // clock
	IconLogs     = "\uf0f6" // file-text

	IconCursor = "\uf054" // chevron-right

	// Playback
	IconPlay  = "\uf04b"
	IconPause = "\uf04c"
	IconStop  = "\uf04d"
	IconMusic = "\uf001"
)
