package session

import "context"

// ScreenGroup identifies which group of screens a client should present.
type ScreenGroup string

const (
	GroupLogin       ScreenGroup = "login"
	GroupAdmin       ScreenGroup = "admin"
	GroupSalesperson ScreenGroup = "salesperson"
	GroupDistributor ScreenGroup = "distributor"
)

// Route maps a session to its screen group. It returns ok=false while the
// session is still loading — no routing decision exists yet. An
// unrecognized role falls back to the login group rather than erroring.
func Route(s Session) (ScreenGroup, bool) {
	if s.Loading {
		return "", false
	}
	if s.Identity == nil {
		return GroupLogin, true
	}
	switch s.Identity.Role {
	case RoleAdmin:
		return GroupAdmin, true
	case RoleSalesperson:
		return GroupSalesperson, true
	case RoleDistributor:
		return GroupDistributor, true
	default:
		return GroupLogin, true
	}
}

// Watch emits the screen group for every settled session change until ctx
// is cancelled. The channel holds only the latest decision: if the session
// changes again before the consumer navigated, the stale decision is
// replaced rather than queued. Consecutive duplicates are suppressed.
func Watch(ctx context.Context, store *Store) <-chan ScreenGroup {
	out := make(chan ScreenGroup, 1)
	updates := store.Subscribe()

	go func() {
		defer close(out)
		var last ScreenGroup
		var seen bool
		for {
			select {
			case <-ctx.Done():
				return
			case snapshot := <-updates:
				group, ok := Route(snapshot)
				if !ok || (seen && group == last) {
					continue
				}
				last, seen = group, true
				select {
				case <-out:
				default:
				}
				out <- group
			}
		}
	}()

	return out
}
