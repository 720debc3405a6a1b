// Package model defines the two persisted record types of the booking
// service and the fixed campus inventory the classroom collection is
// seeded from.  Both collections are stored whole as JSON arrays in the
// shared key-value store; relations between records are by value (block
// and room strings), never by id.
package model

// Classroom describes one bookable room in the campus inventory.
//
// Fields:
//  ID       – unique identifier; seeded rooms use "<block>-<room>".
//  Block    – campus block the room belongs to.
//  Room     – room code, assumed unique across the whole inventory.
//  Capacity – seat count, always positive.
type Classroom struct {
	ID       string `json:"id"`
	Block    string `json:"block"`
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
}
