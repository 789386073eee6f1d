package engine

// LegalCards returns the cards the seat may play into the current
// trick, in display order: cards of the leading suit if any are held,
// else trump if held, else the whole remaining hand. When the seat
// leads, every held card is legal.
func (g *Game) LegalCards(seat int) []Card {
	p := g.players[seat]
	held := p.heldCards()

	lead, hasLead := g.leadCard()
	if hasLead {
		if p.holdsSuit(lead.Suit) {
			held = filterSuit(held, lead.Suit)
		} else if p.holdsSuit(TrumpSuit) {
			held = filterSuit(held, TrumpSuit)
		}
	}
	sortCards(held)
	return held
}

// leadCard returns the card leading the trick in progress.
func (g *Game) leadCard() (Card, bool) {
	if g.phase != PhasePlaying || len(g.trick) == 0 {
		return Card{}, false
	}
	return g.trick[0].Card()
}

func filterSuit(cards []Card, suit Suit) []Card {
	out := cards[:0]
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// isLegalCard reports whether the seat holds the card and the follow
// rule allows it.
func (g *Game) isLegalCard(seat int, card Card) bool {
	if !g.players[seat].holds(card) {
		return false
	}
	for _, c := range g.LegalCards(seat) {
		if c == card {
			return true
		}
	}
	return false
}
