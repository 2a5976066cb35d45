package fields

import (
	"regexp"
	"strings"

	"ingest/internal"
	"ingest/internal/util"
)

var reRoom = regexp.MustCompile(`^([A-Z])\.(.+)`)

// ParseRoom splits a "Phòng học" cell like "A.301" into zone and number.
// Placeholder literals from the vocabulary pass through as the zone.
func (p *Parser) ParseRoom(cell string) internal.Room {
	room := strings.TrimSpace(util.NormalizeText(cell))
	if room == "" {
		return internal.Room{}
	}
	if p.vocab.IsInvalidRoom(room) {
		return internal.Room{Zone: room}
	}
	if m := reRoom.FindStringSubmatch(room); m != nil {
		return internal.Room{Zone: m[1], RoomNumber: m[2]}
	}
	return internal.Room{Zone: internal.ZoneOther, RoomNumber: room}
}
