package themes

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		theme     string
		wantTitle string
	}{
		{"default theme", "default", "2f80ed"},
		{"known theme", "dracula", "ff6e96"},
		{"case insensitive", "Dracula", "ff6e96"},
		{"unknown falls back to default", "no-such-theme", "2f80ed"},
		{"empty falls back to default", "", "2f80ed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.theme); got.Title != tt.wantTitle {
				t.Errorf("Lookup(%q).Title = %q, want %q", tt.theme, got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no themes")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
	if !Exists("default") {
		t.Error("default theme missing from catalog")
	}
}

func TestValidHex(t *testing.T) {
	valid := []string{"fff", "ffff", "2f80ed", "ffffff00", "ABC123"}
	for _, s := range valid {
		if !ValidHex(s) {
			t.Errorf("ValidHex(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "#fff", "ff", "fffff", "red", "2f80edx"}
	for _, s := range invalid {
		if ValidHex(s) {
			t.Errorf("ValidHex(%q) = true, want false", s)
		}
	}
}

func TestResolveColors(t *testing.T) {
	t.Run("theme colors pass through", func(t *testing.T) {
		c := ResolveColors(Overrides{}, "dark")
		if c.Title != "fff" || c.Background != "151515" {
			t.Errorf("ResolveColors(dark) = %+v", c)
		}
		// dark defines no border: neutral default applies.
		if c.Border != "e4e2e2" {
			t.Errorf("Border = %q, want e4e2e2", c.Border)
		}
		// No ring color: ring inherits title.
		if c.Ring != "fff" {
			t.Errorf("Ring = %q, want fff", c.Ring)
		}
	})

	t.Run("overrides win over theme", func(t *testing.T) {
		c := ResolveColors(Overrides{Title: "ff0000", Ring: "00ff00"}, "dark")
		if c.Title != "ff0000" {
			t.Errorf("Title = %q, want ff0000", c.Title)
		}
		if c.Ring != "00ff00" {
			t.Errorf("Ring = %q, want 00ff00", c.Ring)
		}
	})

	t.Run("malformed overrides are ignored", func(t *testing.T) {
		c := ResolveColors(Overrides{Title: "#ff0000", Text: "not-a-color"}, "default")
		if c.Title != "2f80ed" {
			t.Errorf("Title = %q, want theme color", c.Title)
		}
		if c.Text != "434d58" {
			t.Errorf("Text = %q, want theme color", c.Text)
		}
	})

	t.Run("unknown theme degrades to default", func(t *testing.T) {
		c := ResolveColors(Overrides{}, "bogus")
		if c.Title != "2f80ed" {
			t.Errorf("Title = %q, want default theme color", c.Title)
		}
	})
}
