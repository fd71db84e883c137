package cmd

import "testing"

func TestValidPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want bool
	}{
		{75, true},
		{100, true},
		{0.5, true},
		{0, false},
		{-5, false},
		{101, false},
		{150, false},
	}
	for _, c := range cases {
		if got := validPercent(c.in); got != c.want {
			t.Fatalf("validPercent(%g) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTargetFlagRejectedOutOfRange(t *testing.T) {
	defer func() { flagTarget = 0 }()

	// An overshooting target must never reach the engine, where it
	// would demand more periods than the month has.
	flagTarget = 150
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Fatal("target 150 accepted")
	}

	flagTarget = -10
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Fatal("target -10 accepted")
	}

	flagTarget = 0 // unset, falls back to config
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("unset target rejected: %v", err)
	}

	flagTarget = 76
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("target 76 rejected: %v", err)
	}
}
