package spacecombat

// Hit is a colliding bullet/enemy pair, as indices into the slices that
// were scanned. Indices are only valid until either slice changes.
type Hit struct {
	Bullet int
	Enemy  int
}

// BulletEnemyHits scans every bullet against every enemy. One bullet may
// hit several enemies and one enemy may be hit by several bullets; every
// overlapping pair is reported, in bullet-major order.
func BulletEnemyHits(bullets []Bullet, enemies []Enemy) []Hit {
	var hits []Hit
	for bi, b := range bullets {
		br := b.Rect()
		for ei, e := range enemies {
			if br.Intersects(e.Rect()) {
				hits = append(hits, Hit{Bullet: bi, Enemy: ei})
			}
		}
	}
	return hits
}

// PlayerEnemyHits returns the indices of enemies overlapping the player,
// in ascending order.
func PlayerEnemyHits(p Player, enemies []Enemy) []int {
	var hits []int
	pr := p.Rect()
	for i, e := range enemies {
		if pr.Intersects(e.Rect()) {
			hits = append(hits, i)
		}
	}
	return hits
}

// without returns the elements of items whose index is not in drop.
// Each index is removed once no matter how often it was collected.
func without[T any](items []T, drop map[int]bool) []T {
	if len(drop) == 0 {
		return items
	}
	kept := items[:0]
	for i, it := range items {
		if !drop[i] {
			kept = append(kept, it)
		}
	}
	return kept
}

// prune drops the elements for which gone reports true.
func prune[T any](items []T, gone func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !gone(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
