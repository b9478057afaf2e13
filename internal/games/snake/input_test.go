package snake

import "testing"

func TestKeysCandidatePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		keys     Keys
		current  Direction
		expected Direction
	}{
		{"none keeps current", Keys{}, DirRight, DirRight},
		{"left wins over all", Keys{Left: true, Down: true, Up: true, Right: true}, DirUp, DirLeft},
		{"down wins over up and right", Keys{Down: true, Up: true, Right: true}, DirLeft, DirDown},
		{"up wins over right", Keys{Up: true, Right: true}, DirLeft, DirUp},
		{"right alone", Keys{Right: true}, DirUp, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.keys.Candidate(tc.current); got != tc.expected {
				t.Errorf("Candidate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestApplyInputRejectsReversal(t *testing.T) {
	s := newDefaultState()

	// Heading up, only Down pressed: rejected
	if ApplyInput(s, Keys{Down: true}) {
		t.Error("reversal should not report a change")
	}
	if s.Heading != DirUp {
		t.Fatalf("heading = %v, expected up", s.Heading)
	}

	// Next step still moves up
	Move(s)
	if head, _ := s.Head(); head.Pos != (Position{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3,4)", head.Pos)
	}
}

func TestApplyInputTurns(t *testing.T) {
	s := newDefaultState()

	if !ApplyInput(s, Keys{Left: true}) {
		t.Error("turning left from up should be accepted")
	}
	if s.Heading != DirLeft {
		t.Errorf("heading = %v, expected left", s.Heading)
	}

	// Same key again is not a change
	if ApplyInput(s, Keys{Left: true}) {
		t.Error("pressing the current heading should not report a change")
	}
}

func TestApplyInputPrecedenceLosesToReversal(t *testing.T) {
	s := newDefaultState()
	s.Heading = DirRight
	s.stepHeading = DirRight

	// Left has precedence over Up; Left reverses Right so nothing changes,
	// and Up is not considered.
	ApplyInput(s, Keys{Left: true, Up: true})
	if s.Heading != DirRight {
		t.Errorf("heading = %v, expected right", s.Heading)
	}
}

func TestApplyInputNoReversalAcrossFramesBetweenSteps(t *testing.T) {
	s := newDefaultState()
	Move(s) // last step moved up

	// Frame 1: turn left. Frame 2: press down before the next step.
	ApplyInput(s, Keys{Left: true})
	ApplyInput(s, Keys{Down: true})

	if s.Heading == DirDown {
		t.Fatal("heading reversed against the last movement step")
	}

	Move(s)
	if s.stepHeading != DirLeft {
		t.Errorf("step heading = %v, expected left", s.stepHeading)
	}
}

func TestHeadingNeverReversesPreviousStep(t *testing.T) {
	s := newDefaultState()
	inputs := []Keys{
		{Down: true}, {Left: true}, {Right: true}, {Up: true}, {Down: true},
		{Right: true}, {Left: true}, {Down: true}, {Up: true}, {Left: true, Right: true},
	}

	prev := s.stepHeading
	for i, k := range inputs {
		// Two frames of input per step
		ApplyInput(s, k)
		ApplyInput(s, inputs[(i+3)%len(inputs)])
		Move(s)
		if s.stepHeading == prev.Opposite() {
			t.Fatalf("step %d: heading %v reverses previous %v", i, s.stepHeading, prev)
		}
		prev = s.stepHeading
	}
}
