package tunit

// Sample packs replacing the music of some games. The first entry names the
// pack, the others are the sample files, in the order the sound hardware
// refers to them.
var (
	mkSamples = []string{
		"*mk", "title-01.wav", "title-02.wav", "c-select-01.wav", "c-select-02.wav",
		"battle-menu-01.wav", "battle-menu-02.wav", "continue-01.wav",
		"continue-02.wav", "fatality-01.wav", "fatality-02.wav", "courtyard-01.wav",
		"courtyard-02.wav", "courtyard-end-01.wav", "courtyard-end-02.wav",
		"courtyard-finish-him-01.wav", "courtyard-finish-him-02.wav",
		"test-your-might-01.wav", "test-your-might-02.wav",
		"test-your-might-end-01.wav", "test-your-might-end-02.wav", "gameover-01.wav",
		"gameover-02.wav", "warriors-shrine-01.wav", "warriors-shrine-02.wav",
		"warriors-shrine-end-01.wav", "warriors-shrine-end-02.wav",
		"warriors-shrine-finish-him-01.wav", "warriors-shrine-finish-him-02.wav",
		"pit-01.wav", "pit-02.wav", "pit-end-01.wav", "pit-end-02.wav",
		"pit-finish-him-01.wav", "pit-finish-him-02.wav", "throne-room-01.wav",
		"throne-room-02.wav", "throne-room-end-01.wav", "throne-room-end-02.wav",
		"throne-room-finish-him-01.wav", "throne-room-finish-him-02.wav",
		"goros-lair-01.wav", "goros-lair-02.wav", "goros-lair-end-01.wav",
		"goros-lair-end-02.wav", "goros-lair-finish-him-01.wav",
		"goros-lair-finish-him-02.wav", "endurance-switch-01.wav",
		"endurance-switch-02.wav", "victory-01.wav", "victory-02.wav",
		"palace-gates-01.wav", "palace-gates-02.wav", "palace-gates-end-01.wav",
		"palace-gates-end-02.wav", "palace-gates-finish-him-01.wav",
		"palace-gates-finish-him-02.wav",
	}

	nbajamSamples = []string{
		"*nbajam", "main-theme-01.wav", "main-theme-02.wav", "team-select-01.wav",
		"team-select-02.wav", "ingame-01.wav", "ingame-02.wav", "ingame-03.wav",
		"ingame-04.wav", "intermission-01.wav", "intermission-02.wav",
		"halftime-01.wav", "halftime-02.wav", "theme-end-01.wav", "theme-end-02.wav",
	}
)

const (
	sampleChannels = 2
	sampleVolume   = 100
)
