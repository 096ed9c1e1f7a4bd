// Package round provides the synchronized broadcast/collect primitive
// the online phase uses for its single communication round per Reshare.
//
// A Channel models one round among n parties: Start opens the round,
// every party Broadcasts exactly one field element, Collect blocks until
// the round is complete (or the context expires), and End invalidates
// the buffer for reuse. In a deployment the channel is replaced by an
// authenticated transport; here it is the trusted in-process stand-in.
package round

import (
	"context"
	"sync"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/party"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

var (
	// ErrNotStarted is returned when the channel is used before Start,
	// or after End without a new Start.
	ErrNotStarted = xerrors.New("round: channel not started")
	// ErrInProgress is returned by Start while a round is still open.
	ErrInProgress = xerrors.New("round: round already in progress")
	// ErrUnknownSender is returned for a sender index outside 0…n−1.
	ErrUnknownSender = xerrors.New("round: unknown sender")
	// ErrDuplicateSender is returned when a party broadcasts twice.
	ErrDuplicateSender = xerrors.New("round: duplicate broadcast")
	// ErrIncompleteRound is returned by Collect when the context expires
	// before every party has broadcast. The round is malformed; there is
	// no retry at this layer.
	ErrIncompleteRound = xerrors.New("round: incomplete round")
)

// Message is one broadcast value, held transiently for one round.
type Message struct {
	From  party.ID
	Value field.Element
}

// Channel is one broadcast/collect exchange among n parties. It is the
// only shared mutable state in the core and is safe for concurrent use.
type Channel struct {
	mtx  sync.Mutex
	n    int
	open bool
	id   xid.ID
	buf  map[party.ID]field.Element
	done chan struct{}
}

// NewChannel returns an idle channel for n parties.
func NewChannel(n int) *Channel {
	return &Channel{n: n}
}

// N returns the number of parties the channel synchronizes.
func (c *Channel) N() int { return c.n }

// ID returns the identifier of the current (or most recent) round.
func (c *Channel) ID() xid.ID {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.id
}

// Start opens a new round, resetting the message buffer.
func (c *Channel) Start() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.open {
		return ErrInProgress
	}
	c.open = true
	c.id = xid.New()
	c.buf = make(map[party.ID]field.Element, c.n)
	c.done = make(chan struct{})
	log.Debug().Str("round", c.id.String()).Int("parties", c.n).Msg("round started")
	return nil
}

// Broadcast records party from's value for the current round.
func (c *Channel) Broadcast(from party.ID, v field.Element) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if !c.open {
		return ErrNotStarted
	}
	if int(from) >= c.n {
		return xerrors.Errorf("round %s: sender %s: %w", c.id, from, ErrUnknownSender)
	}
	if _, ok := c.buf[from]; ok {
		return xerrors.Errorf("round %s: sender %s: %w", c.id, from, ErrDuplicateSender)
	}
	c.buf[from] = v
	log.Debug().Str("round", c.id.String()).Str("from", from.String()).Msg("broadcast stored")
	if len(c.buf) == c.n {
		close(c.done)
	}
	return nil
}

// Collect blocks until all n parties have broadcast, then returns the
// messages ordered by party index. If ctx expires first the round is
// malformed and ErrIncompleteRound names the missing parties.
func (c *Channel) Collect(ctx context.Context) ([]Message, error) {
	c.mtx.Lock()
	if !c.open {
		c.mtx.Unlock()
		return nil, ErrNotStarted
	}
	done := c.done
	c.mtx.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, xerrors.Errorf("round %s: missing broadcasts from %v: %w",
			c.ID(), c.missing(), ErrIncompleteRound)
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	msgs := make([]Message, 0, c.n)
	for i := 0; i < c.n; i++ {
		id := party.ID(i)
		msgs = append(msgs, Message{From: id, Value: c.buf[id]})
	}
	return msgs, nil
}

// End finalizes the round and invalidates the buffer. A new Start is
// required before the channel can carry another round.
func (c *Channel) End() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if !c.open {
		return ErrNotStarted
	}
	c.open = false
	c.buf = nil
	c.done = nil
	log.Debug().Str("round", c.id.String()).Msg("round ended")
	return nil
}

func (c *Channel) missing() party.IDSlice {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var out party.IDSlice
	for i := 0; i < c.n; i++ {
		if _, ok := c.buf[party.ID(i)]; !ok {
			out = append(out, party.ID(i))
		}
	}
	return out
}
