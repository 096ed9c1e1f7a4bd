package online

import (
	"context"
	"io"

	"github.com/mpcforge/spdz-online/pkg/math/field"
	"github.com/mpcforge/spdz-online/pkg/party"
	"github.com/mpcforge/spdz-online/pkg/round"
	"github.com/mpcforge/spdz-online/pkg/share"
	"github.com/rs/xid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// Mode selects what Reshare does with the offset.
type Mode uint8

const (
	// PreserveSecret re-randomizes the sharing and drives δ to zero, so
	// the result opens to the true secret. This is the mandatory step
	// before Output for any sharing with a nonzero offset.
	PreserveSecret Mode = 1 + iota
	// RefreshOffset re-randomizes the sharing under a fresh uniformly
	// random offset.
	RefreshOffset
)

// Info carries the public byproducts of one Reshare for audit: the
// revealed correction ε and the channel round that produced it.
type Info struct {
	Epsilon field.Element
	Round   xid.ID
}

// Reshare re-randomizes ⟨x⟩ using the fresh mask ⟨r⟩ and one channel
// round: party i broadcasts dᵢ = xᵢ − rᵢ, the collected sum ε recovers
// the masked value r+ε = x+δ, and a brand-new share/MAC vector pair is
// drawn around the target dictated by mode. The mask is consumed.
//
// Broadcasts are driven concurrently, one goroutine per party, so a
// channel backed by real transport behaves identically.
func Reshare(ctx context.Context, x, mask *share.Authenticated, mode Mode, alpha field.Element, ch *round.Channel, rand io.Reader) (*share.Authenticated, *Info, error) {
	n := x.N()
	if mask.N() != n || ch.N() != n {
		return nil, nil, ErrMismatchedShares
	}
	if mode != PreserveSecret && mode != RefreshOffset {
		return nil, nil, xerrors.Errorf("online: reshare: unknown mode %d", mode)
	}

	if err := ch.Start(); err != nil {
		return nil, nil, xerrors.Errorf("online: reshare: %w", err)
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			d := x.Share(i).Sub(mask.Share(i))
			return ch.Broadcast(party.ID(i), d)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, xerrors.Errorf("online: reshare: %w", err)
	}

	msgs, err := ch.Collect(ctx)
	if err != nil {
		return nil, nil, xerrors.Errorf("online: reshare: %w", err)
	}
	roundID := ch.ID()
	if err := ch.End(); err != nil {
		return nil, nil, xerrors.Errorf("online: reshare: %w", err)
	}

	f := x.Field()
	eps := f.Zero()
	for _, m := range msgs {
		eps = eps.Add(m.Value)
	}

	// r + ε = x + δ; stripping the input's δ leaves the true secret, so
	// both modes stay correct for any input offset.
	secret := mask.Value().Add(eps).Sub(x.Offset())

	offset := f.Zero()
	if mode == RefreshOffset {
		offset = f.Sample(rand)
	}
	target := secret.Add(offset)

	shares := share.Split(target, n, rand)
	macs := share.Split(alpha.Mul(target), n, rand)
	out, err := share.New(offset, shares, macs)
	if err != nil {
		return nil, nil, xerrors.Errorf("online: reshare: %w", err)
	}
	return out, &Info{Epsilon: eps, Round: roundID}, nil
}
