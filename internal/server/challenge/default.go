package challenge

import "questfs/internal/core"

// Default returns the built-in challenge so the server and the local REPL
// work out of the box without a challenge directory.
func Default() *Challenge {
	c, err := New(
		"lost-launch-code",
		"The Lost Launch Code",
		"You are logged into the ship's terminal as the pilot. The launch "+
			"code was misplaced during last night's system backup. Find it "+
			"and run: solve <code>",
		"Boot logs usually say where backups end up, and backups love "+
			"hiding in dot-directories.",
		"/home/pilot",
		"orion-7-delta",
		defaultSeed(),
	)
	if err != nil {
		// The built-in definition is static; failing to hash its secret
		// means bcrypt itself is broken.
		panic(err)
	}
	return c
}

func defaultSeed() core.Seed {
	return core.Seed{
		core.SeedDir("home",
			core.SeedDir("pilot",
				core.SeedFile("welcome.txt",
					"Welcome aboard, pilot.\n\n"+
						"The launch code went missing during the backup last night.\n"+
						"It has to be somewhere under /var. Good luck.\n"),
				core.SeedDir("notes",
					core.SeedFile("todo.txt",
						"- recalibrate nav sensors\n"+
							"- ask ops why the backup job moves files around\n"),
					core.SeedFile("diary.txt",
						"Day 112. Tried 'password123' as the launch code again.\n"+
							"Still not it. Obviously.\n"),
				),
				core.SeedFile("junk.dat", "\x00\x00 nothing to see here \x00\x00"),
			),
		),
		core.SeedDir("etc",
			core.SeedFile("motd", "Property of Orion Lines. Unauthorized launches prohibited.\n"),
			core.SeedFile("hosts", "127.0.0.1 bridge\n10.0.0.7 engine-room\n"),
		),
		core.SeedDir("var",
			core.SeedDir("log",
				core.SeedFile("boot.log",
					"[ok] reactor online\n"+
						"[ok] nightly backup: credentials moved to .vault\n"+
						"[warn] coffee machine offline\n"),
				core.SeedDir(".vault",
					core.SeedFile("launch_code.txt", "orion-7-delta\n"),
				),
			),
		),
		core.SeedDir("tmp"),
	}
}
