package model

// Profile holds the answers collected by onboarding. Values are the bracket
// codes from the selection menus ("1".."5"); display text lives in the
// locale bundle. Re-running onboarding overwrites the profile wholesale.
type Profile struct {
	Income string `json:"income"`
	Goal   string `json:"goal"`
	Debt   string `json:"debt"`
	Family string `json:"family"`
}
