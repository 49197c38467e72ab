package card

import (
	"fmt"
	"strconv"
	"strings"

	corejson "github.com/ratel-online/core/util/json"
)

type Rank int

// Number ranks are 0 to 9; action ranks follow.
const (
	Skip Rank = 10 + iota
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var actionRankNames = map[Rank]string{
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw_two",
	Wild:         "wild",
	WildDrawFour: "wild_draw_four",
}

func (r Rank) IsNumber() bool {
	return r >= 0 && r <= 9
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

func (r Rank) Valid() bool {
	return r.IsNumber() || (r >= Skip && r <= WildDrawFour)
}

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	if name, ok := actionRankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return corejson.Marshal(r.String()), nil
}

func (r *Rank) UnmarshalJSON(data []byte) error {
	var name string
	if err := corejson.Unmarshal(data, &name); err != nil {
		var number int
		if numErr := corejson.Unmarshal(data, &number); numErr != nil {
			return err
		}
		name = strconv.Itoa(number)
	}
	parsed, err := RankByName(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RankByName accepts "0".."9" and the action names, ignoring case.
func RankByName(name string) (Rank, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if number, err := strconv.Atoi(normalized); err == nil {
		if rank := Rank(number); rank.IsNumber() {
			return rank, nil
		}
		return 0, fmt.Errorf("invalid rank '%s'", name)
	}
	for rank, rankName := range actionRankNames {
		if rankName == normalized {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", name)
}
