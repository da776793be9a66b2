package engine

import (
	"math"

	"github.com/lixenwraith/sticky/core"
)

// flowStyle positions an element taller than the viewport under flow policy:
// scrolling down pins its bottom edge once the trailing content has been
// read, scrolling up releases it to travel with the content until its top
// edge reaches the pin offset.
//
// Every branch re-derives placement from the current rects and the single
// remembered turn point. Nothing accumulates between cycles, which keeps the
// algorithm resilient to dropped frames at the cost of a one-cycle
// correction after a very fast reversal
func flowStyle(cfg Config, in Input) Style {
	stickyRect := in.Sticky.OrZero()
	container := in.Container.OrZero()

	containerTop := float64(core.Round(container.Top))
	containerBottom := float64(core.Round(container.Bottom))
	stickyTop := float64(core.Round(stickyRect.Top))
	scrollY := in.Scroll.Y
	scrollYTurn := float64(core.Round(in.Scroll.YTurn))

	heightDiff := stickyRect.Height - in.Viewport.Height
	if heightDiff < 0 {
		heightDiff = 0
	}

	stickyBottomReached := stickyRect.Bottom <= in.Viewport.Height
	containerTopReached := containerTop < cfg.OffsetTop

	// The turn point is a document offset; lift the container span into
	// document coordinates before comparing
	containerDocTop := scrollY + containerTop
	containerDocBottom := scrollY + containerBottom
	turnWithinContainer := scrollYTurn >= containerDocTop && scrollYTurn <= containerDocBottom

	// Travel since the turn still fits inside the excess height
	turnWithinBand := math.Abs(scrollY-scrollYTurn) <= heightDiff

	up := in.Scroll.ScrollingUp
	down := in.Scroll.ScrollingDown

	switch {
	case (down && !stickyBottomReached && !turnWithinContainer) ||
		(up && !containerTopReached) ||
		(up && turnWithinBand && !turnWithinContainer):
		// Outside the tracking range: rest at the top of the container
		return Style{Position: PositionAbsolute, Top: 0}

	case down && stickyBottomReached:
		// Trailing edge has been read: pin shifted up by the excess height
		// so the bottom of the element sits at the bottom of the viewport
		return Style{Position: PositionFixed, Top: -heightDiff}

	case (down && turnWithinContainer) ||
		(up && scrollYTurn >= containerDocTop && stickyTop < cfg.OffsetTop):
		// Released: glue the element to the content at its current document
		// position until its leading edge comes back to the pin offset
		return Style{Position: PositionAbsolute, Top: math.Abs(scrollY - stickyTop + (containerTop - scrollY))}

	default:
		// Leading edge reached the offset while scrolling up
		return Style{Position: PositionFixed, Top: cfg.OffsetTop}
	}
}
