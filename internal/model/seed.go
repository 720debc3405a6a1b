package model

import "sort"

// BlocksData maps each campus block to its room codes.  This is the
// reference inventory used to seed an empty classrooms collection.
var BlocksData = map[string][]string{
	"Block A": {"A101", "A102", "A201", "A202"},
	"Block B": {"B101", "B102", "B201"},
	"Block P": {"P101", "P102"},
	"Block N": {"N101", "N102", "N201"},
}

// RoomCapacities holds the known seat count per room code.  Rooms missing
// from this table default to DefaultCapacity.
var RoomCapacities = map[string]int{
	"A101": 30, "A102": 40, "A201": 60, "A202": 30,
	"B101": 50, "B102": 50, "B201": 80,
	"P101": 20, "P102": 30,
	"N101": 100, "N102": 40, "N201": 40,
}

// DefaultCapacity is assumed for rooms without an explicit capacity entry.
const DefaultCapacity = 30

// SeedClassrooms builds the initial classroom inventory from BlocksData and
// RoomCapacities.  Blocks are emitted in sorted order so seeding is
// deterministic.  Seeded ids combine block and room so re-seeding a wiped
// store produces identical records.
func SeedClassrooms() []Classroom {
	blocks := make([]string, 0, len(BlocksData))
	for b := range BlocksData {
		blocks = append(blocks, b)
	}
	sort.Strings(blocks)

	var out []Classroom
	for _, block := range blocks {
		for _, room := range BlocksData[block] {
			cap, ok := RoomCapacities[room]
			if !ok {
				cap = DefaultCapacity
			}
			out = append(out, Classroom{
				ID:       block + "-" + room,
				Block:    block,
				Room:     room,
				Capacity: cap,
			})
		}
	}
	return out
}
