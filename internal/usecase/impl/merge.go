package impl

import (
	"time"

	"accounts/internal/domain/entity"
)

// MergeAccounts combines two accounts into a new one. Profile fields come from primary
// unless empty there. Devices, favorites and notifications are unions in first-seen
// order, primary first. The result has no id; created_at is the earlier of the two.
func MergeAccounts(primary, secondary *entity.Account, now time.Time) *entity.Account {
	merged := &entity.Account{
		Devices:       unionBy(primary.Devices, secondary.Devices, func(d entity.Device) string { return d.DeviceID }),
		FavoriteLines: unionBy(primary.FavoriteLines, secondary.FavoriteLines, identity),
		FavoriteStops: unionBy(primary.FavoriteStops, secondary.FavoriteStops, identity),
		Email:         firstNonEmpty(primary.Email, secondary.Email),
		FirstName:     firstNonEmpty(primary.FirstName, secondary.FirstName),
		LastName:      firstNonEmpty(primary.LastName, secondary.LastName),
		Avatar:        firstNonEmpty(primary.Avatar, secondary.Avatar),
		Gender:        firstNonEmpty(primary.Gender, secondary.Gender),
		BirthDate:     firstNonEmpty(primary.BirthDate, secondary.BirthDate),
		Role:          entity.Role(firstNonEmpty(primary.Role.String(), secondary.Role.String())),
		Notifications: unionBy(primary.Notifications, secondary.Notifications, func(n entity.Notification) string { return n.ID }),
		CreatedAt:     earliest(primary.CreatedAt, secondary.CreatedAt),
		UpdatedAt:     now,
	}

	for i := range merged.Notifications {
		merged.Notifications[i] = merged.Notifications[i].Clone()
	}
	merged.Normalize()

	return merged
}

func unionBy[T any](a, b []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, list := range [][]T{a, b} {
		for _, item := range list {
			k := key(item)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}

	return out
}

func identity(s string) string { return s }

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func earliest(a, b time.Time) time.Time {
	switch {
	case a.IsZero():
		return b
	case b.IsZero(), a.Before(b):
		return a
	default:
		return b
	}
}
