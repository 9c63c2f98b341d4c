package dice

import "time"

// Roll is an immutable record of a resolved dice roll. CharacterName is a
// snapshot taken at resolution time, not a live reference, so history stays
// accurate if the character is later renamed.
type Roll struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"diceType"`
	Result        int32     `json:"result"`
	Timestamp     time.Time `json:"timestamp"`
	CharacterName string    `json:"characterName"`
	Reason        string    `json:"reason,omitempty"`
}
