package entity

// StatusBarOutput is the JSON record consumed by the status bar (waybar custom module).
// The zero value means "nothing to report" and is emitted as "{}".
type StatusBarOutput struct {
	Text       string `json:"text"`
	Tooltip    string `json:"tooltip"`
	Class      string `json:"class"`
	Alt        string `json:"alt"`
	Percentage int    `json:"percentage"`
	Icon       string `json:"icon,omitempty"`
}

// IsEmpty reports whether the record carries no track.
func (o StatusBarOutput) IsEmpty() bool {
	return o == StatusBarOutput{}
}
