package game

import (
	"sync"

	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile; the last card is the top.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// Reclaim removes and returns every card below the top keepTop cards.
func (p *Pile) Reclaim(keepTop int) []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if keepTop < 0 {
		keepTop = 0
	}
	reclaimable := len(p.cards) - keepTop
	if reclaimable <= 0 {
		return nil
	}
	reclaimed := make([]card.Card, reclaimable)
	copy(reclaimed, p.cards[:reclaimable])
	kept := make([]card.Card, keepTop, cap(p.cards))
	copy(kept, p.cards[reclaimable:])
	p.cards = kept
	return reclaimed
}

// Reclaimable counts the cards Reclaim would return.
func (p *Pile) Reclaimable(keepTop int) int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if reclaimable := len(p.cards) - keepTop; reclaimable > 0 {
		return reclaimable
	}
	return 0
}
