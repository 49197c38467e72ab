package game

import (
	"fmt"
	"math/rand"
)

var defaultNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

type seat struct {
	name string
	hand *Hand
}

func newSeats(names []string) []*seat {
	seats := make([]*seat, 0, len(names))
	for _, name := range names {
		seats = append(seats, &seat{name: name, hand: NewHand()})
	}
	return seats
}

// seatNames fills in missing or blank names from the default list, picked by rng.
func seatNames(players int, names []string, rng *rand.Rand) []string {
	pool := make([]string, len(defaultNames))
	copy(pool, defaultNames)
	rng.Shuffle(len(pool), func(i int, j int) { pool[i], pool[j] = pool[j], pool[i] })

	result := make([]string, players)
	for index := range result {
		if index < len(names) && names[index] != "" {
			result[index] = names[index]
			continue
		}
		if index < len(pool) {
			result[index] = pool[index]
		} else {
			result[index] = fmt.Sprintf("Player %d", index+1)
		}
	}
	return result
}
