package movement

import "math/rand/v2"

// moveDown sends the ship straight down.
func moveDown(s State, _ Env) State {
	s.Y += s.Speed
	return s
}

// sneakSprint descends at speed until a third of the way down the screen,
// then at three times speed.
func sneakSprint(s State, env Env) State {
	if s.Y >= float64(env.ScreenHeight/3) {
		s.Y += s.Speed * SprintFactor
	} else {
		s.Y += s.Speed
	}
	return s
}

func zig(s State, _ Env) State {
	return weave(s, 1)
}

func zag(s State, _ Env) State {
	return weave(s, -1)
}

// weave descends while swinging sideways. For the first half of the cycle
// the ship moves in sign's direction, then back.
func weave(s State, sign float64) State {
	if s.MoveCounter <= ZigHalfCycle {
		s.X += sign * s.Speed * 2
	} else {
		s.X -= sign * s.Speed * 2
	}
	s.Y += s.Speed

	s.MoveCounter++
	if s.MoveCounter > ZigCycle {
		s.MoveCounter = 0
	}
	return s
}

func crawlLeft(s State, env Env) State {
	return crawl(s, env, 0)
}

func crawlRight(s State, env Env) State {
	return crawl(s, env, 1)
}

// crawl sweeps a row at a time. leftward is the Direction value that moves
// the ship left; hitting an edge starts a CrawlTurn-frame descent and points
// the ship back across the screen.
func crawl(s State, env Env, leftward int) State {
	if s.MoveCounter > 0 {
		s.Y += CrawlDescent
		s.MoveCounter--
		return s
	}

	if s.Direction == leftward {
		s.X -= s.Speed
	} else {
		s.X += s.Speed
	}

	right := float64(env.ScreenWidth) - env.ShipWidth
	switch {
	case s.X < 0:
		s.X = 0
		s.MoveCounter = CrawlTurn
		s.Direction = 1 - leftward
	case s.X > right:
		s.X = right
		s.MoveCounter = CrawlTurn
		s.Direction = leftward
	}
	return s
}

// crawlDrop behaves like crawl_right, except that once past the middle of
// the screen it holds still for a random number of frames and then drops
// once by three times speed.
func crawlDrop(s State, env Env) State {
	if !s.Dropped && s.MoveCounter == 0 && s.Y > float64(env.ScreenHeight/2) {
		s.MoveCounter = -(1 + drawN(env.Rand, DropWaitFrames))
		return s
	}

	if s.MoveCounter < 0 {
		if s.MoveCounter == -1 {
			s.Y += s.Speed * SprintFactor
			s.MoveCounter = 0
			s.Dropped = true
			return s
		}
		s.MoveCounter++
		return s
	}

	return crawl(s, env, 1)
}

func drawN(r Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	v := r.IntN(n)
	if v < 0 || v >= n {
		return 0
	}
	return v
}
