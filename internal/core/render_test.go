package core

import "testing"

func TestRender(t *testing.T) {
	t.Run("root line with nested and last-sibling connectors", func(t *testing.T) {
		tree := seedTestTree(t, Seed{
			SeedDir("d1",
				SeedFile("f1", ""),
			),
			SeedDir("d2"),
		})

		want := "/\n" +
			"├── d1/\n" +
			"│   └── f1\n" +
			"└── d2/\n"

		got, err := tree.Render("")
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if got != want {
			t.Errorf("render mismatch:\nwant:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("continuation bars track non-last ancestors", func(t *testing.T) {
		tree := seedTestTree(t, Seed{
			SeedDir("a",
				SeedDir("b",
					SeedFile("c.txt", ""),
				),
				SeedFile("d.txt", ""),
			),
			SeedFile("e.txt", ""),
		})

		want := "/\n" +
			"├── a/\n" +
			"│   ├── b/\n" +
			"│   │   └── c.txt\n" +
			"│   └── d.txt\n" +
			"└── e.txt\n"

		got, err := tree.Render("/")
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if got != want {
			t.Errorf("render mismatch:\nwant:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("renders from the current directory by default", func(t *testing.T) {
		tree := seedTestTree(t, Seed{
			SeedDir("a",
				SeedFile("f.txt", "hi"),
			),
		})
		if err := tree.ChangeDirectory("a"); err != nil {
			t.Fatalf("cd failed: %v", err)
		}

		want := "a/\n" +
			"└── f.txt\n"

		got, err := tree.Render("")
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if got != want {
			t.Errorf("render mismatch:\nwant:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("empty directory renders a single line", func(t *testing.T) {
		tree := seedTestTree(t, Seed{SeedDir("empty")})

		got, err := tree.Render("empty")
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if got != "empty/\n" {
			t.Errorf("expected single line, got %q", got)
		}
	})

	t.Run("file target renders its own name", func(t *testing.T) {
		tree := defaultTestTree(t)

		got, err := tree.Render("notes.txt")
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if got != "notes.txt\n" {
			t.Errorf("expected notes.txt line, got %q", got)
		}
	})

	t.Run("missing target fails with not found", func(t *testing.T) {
		tree := defaultTestTree(t)
		_, err := tree.Render("ghost")
		assertErrIs(t, err, ErrNotFound)
	})
}
