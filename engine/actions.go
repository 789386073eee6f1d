package engine

import "fmt"

// SubmitBid places a bid for the seat. Only the player to bid may call
// it, with any value in [0, handSize], except the Set's last bidder,
// whose bid may not bring the bid sum to exactly handSize. A rejection
// leaves state unchanged. After the last accepted bid play begins, and
// any bot turns that follow run to completion before returning.
func (g *Game) SubmitBid(seat, bid int) error {
	if err := g.applyBid(seat, bid); err != nil {
		return err
	}
	return g.runBots()
}

func (g *Game) applyBid(seat, bid int) error {
	if g.phase != PhaseBidding {
		return ErrWrongPhase
	}
	if g.seatAt(g.bidTurn) != seat {
		return ErrNotYourTurn
	}
	if bid < 0 || bid > g.handSize {
		return ErrIllegalBid
	}
	if forbidden, ok := g.ForbiddenBid(seat); ok && bid == forbidden {
		return ErrForbiddenBid
	}

	p := g.players[seat]
	p.bid = bid
	p.hasBid = true

	g.bidTurn++
	if g.bidTurn == len(g.players) {
		g.phase = PhasePlaying
		g.beginTrick(g.seatAt(0))
	}
	return nil
}

// SubmitCard plays a card for the seat. Only the player to act may
// call it, and only with a card the follow rule allows. A rejection
// leaves state unchanged. Trick resolution, Set scoring and any bot
// turns that follow happen before returning.
func (g *Game) SubmitCard(seat int, card Card) error {
	if err := g.applyCard(seat, card); err != nil {
		return err
	}
	return g.runBots()
}

func (g *Game) applyCard(seat int, card Card) error {
	if g.phase != PhasePlaying {
		return ErrWrongPhase
	}
	if actor, ok := g.CurrentActor(); !ok || actor != seat {
		return ErrNotYourTurn
	}
	if !g.isLegalCard(seat, card) {
		return ErrIllegalCard
	}

	p := g.players[seat]
	for i, s := range p.Hand {
		if c, ok := s.Card(); ok && c == card {
			p.Hand[i] = Slot{}
			break
		}
	}

	g.trick[g.trickPos] = SlotOf(card)
	if g.winnerPos < 0 {
		g.winnerPos = g.trickPos
	} else if w, _ := g.trick[g.winnerPos].Card(); card.Beats(w) {
		g.winnerPos = g.trickPos
	}
	g.trickPos++

	if g.trickPos == len(g.players) {
		g.resolveTrick()
	}
	return nil
}

// resolveTrick credits the trick to its winner, records it, and either
// starts the next trick with the winner leading or scores the Set.
func (g *Game) resolveTrick() {
	winner := g.trickSeats[g.winnerPos]
	g.players[winner].TricksWon++

	rec := TrickRecord{
		Leader: g.trickSeats[0],
		Seats:  append([]int(nil), g.trickSeats...),
		Cards:  make([]Card, len(g.trick)),
		Winner: winner,
	}
	for i, s := range g.trick {
		rec.Cards[i], _ = s.Card()
	}
	g.history = append(g.history, rec)

	g.trickIdx++
	if g.trickIdx < g.handSize {
		g.beginTrick(winner)
		return
	}

	g.scoreSet()
	g.setNum++
	g.trick = nil
	g.trickSeats = nil
	g.trickPos = 0
	g.winnerPos = -1
	if g.initialHandSize-g.setNum < 1 {
		g.phase = PhaseGameOver
	} else {
		g.phase = PhaseSetDone
	}
}

// runBots advances the game while the player to act is a bot, driving
// each move through the same validation path as external callers. A
// rejected bot move stops the loop; the engine never guesses a
// replacement move.
func (g *Game) runBots() error {
	if g.strategy == nil {
		return nil
	}
	for {
		seat, ok := g.CurrentActor()
		if !ok || !g.players[seat].Ref.IsBot {
			return nil
		}
		var err error
		switch g.phase {
		case PhaseBidding:
			err = g.applyBid(seat, g.strategy.DecideBid(g, seat))
		case PhasePlaying:
			err = g.applyCard(seat, g.strategy.DecideCard(g, seat))
		default:
			return nil
		}
		if err != nil {
			return fmt.Errorf("bot move rejected for seat %d: %w", seat, err)
		}
	}
}
