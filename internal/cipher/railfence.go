package cipher

import (
	"github.com/cipherlab-go/internal/alphabet"
	apperrors "github.com/cipherlab-go/internal/errors"
)

// RailFence writes text along a zigzag of rails and reads the rails
// concatenated. Pure transposition: no letter changes, only positions.
type RailFence struct {
	rails int
}

// NewRailFence creates a rail fence cipher with the given rail count.
func NewRailFence(rails int) (*RailFence, error) {
	if rails < 2 {
		return nil, apperrors.NewInvalidKeyf("rail fence needs at least 2 rails, got %d", rails)
	}
	return &RailFence{rails: rails}, nil
}

// Family returns the cipher family
func (r *RailFence) Family() Family { return FamilyRailFence }

// railPattern returns the rail index for each position of an n-letter
// text: down the rails, bouncing at the top and bottom.
func (r *RailFence) railPattern(n int) []int {
	pattern := make([]int, n)
	rail, dir := 0, 1
	for i := 0; i < n; i++ {
		pattern[i] = rail
		if rail == 0 {
			dir = 1
		} else if rail == r.rails-1 {
			dir = -1
		}
		rail += dir
	}
	return pattern
}

// Encode reads the zigzag rows top to bottom.
func (r *RailFence) Encode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	pattern := r.railPattern(len(t))
	out := make([]byte, 0, len(t))
	for rail := 0; rail < r.rails; rail++ {
		for i := 0; i < len(t); i++ {
			if pattern[i] == rail {
				out = append(out, t[i])
			}
		}
	}
	return string(out), nil
}

// Decode reconstructs the zigzag shape, fills it rail by rail in
// reading order, then extracts letters in write order.
func (r *RailFence) Decode(text string) (string, error) {
	t, err := requireText(text)
	if err != nil {
		return "", err
	}
	pattern := r.railPattern(len(t))
	plain := make([]byte, len(t))
	i := 0
	for rail := 0; rail < r.rails; rail++ {
		for pos := 0; pos < len(t); pos++ {
			if pattern[pos] == rail {
				plain[pos] = t[i]
				i++
			}
		}
	}
	return string(plain), nil
}

// Visualize renders the fence with letters in their rail positions.
func (r *RailFence) Visualize(text string) (*Visualization, error) {
	viz := &Visualization{Family: FamilyRailFence}
	t := alphabet.Normalize(text)
	if t == "" {
		return viz, nil
	}
	pattern := r.railPattern(len(t))
	rails := make([][]string, r.rails)
	for rail := range rails {
		rails[rail] = make([]string, len(t))
		for i := range rails[rail] {
			rails[rail][i] = "."
		}
	}
	for i := 0; i < len(t); i++ {
		rails[pattern[i]][i] = string(t[i])
	}
	out, _ := r.Encode(t)
	viz.Rails = rails
	viz.Result = out
	return viz, nil
}
