package config

// GameConfig is the root config for game.json.
type GameConfig struct {
	Display    DisplayConfig    `json:"display"`
	Loop       LoopConfig       `json:"loop"`
	Transition TransitionConfig `json:"transition"`
	Audio      AudioConfig      `json:"audio"`
	Save       SaveConfig       `json:"save"`
	Stages     StageTuning      `json:"stages"`
}

type DisplayConfig struct {
	Title     string `json:"title"`
	MaxWidth  int    `json:"maxWidth"`
	MaxHeight int    `json:"maxHeight"`
	Framerate int    `json:"framerate"`
}

type LoopConfig struct {
	MaxDT     float64 `json:"maxDt"`     // Frame delta ceiling (seconds)
	ClickSlop float64 `json:"clickSlop"` // Max pointer travel for a click (pixels)
}

type TransitionConfig struct {
	Rate float64 `json:"rate"` // Fade progress per second
}

type AudioConfig struct {
	Enabled     bool    `json:"enabled"`
	SampleRate  int     `json:"sampleRate"`
	Volume      float64 `json:"volume"`
	BGMInterval float64 `json:"bgmInterval"` // Seconds between BGM notes
}

type SaveConfig struct {
	Key  string `json:"key"`  // localStorage key in the browser
	File string `json:"file"` // File name under the user config dir on desktop
}

// StageTuning holds the numeric parameters of every stage.
type StageTuning struct {
	Collect  CollectTuning  `json:"collect"`
	Cut      CutTuning      `json:"cut"`
	Chase    ChaseTuning    `json:"chase"`
	Race     RaceTuning     `json:"race"`
	Makeup   MakeupTuning   `json:"makeup"`
	Flush    FlushTuning    `json:"flush"`
	Hide     HideTuning     `json:"hide"`
	Battle   BattleTuning   `json:"battle"`
	Scroller ScrollerTuning `json:"scroller"`
}

type CollectTuning struct {
	Goal             int     `json:"goal"`
	SpawnInterval    float64 `json:"spawnInterval"`
	SpawnDecay       float64 `json:"spawnDecay"` // Interval shrink per spawn
	MinSpawnInterval float64 `json:"minSpawnInterval"`
	GoldenChance     float64 `json:"goldenChance"`
	BombChance       float64 `json:"bombChance"`
	GoldenValue      int     `json:"goldenValue"`
	BombValue        int     `json:"bombValue"`
	MinFallSpeed     float64 `json:"minFallSpeed"`
	FallSpeedRange   float64 `json:"fallSpeedRange"`
	HitScale         float64 `json:"hitScale"` // Tap radius as a fraction of size
}

type CutTuning struct {
	Goal         int     `json:"goal"`
	InitialWorms int     `json:"initialWorms"`
	MaxWorms     int     `json:"maxWorms"`
	TrimTo       int     `json:"trimTo"`
	SplitScale   float64 `json:"splitScale"`
	MinSize      float64 `json:"minSize"`
	HitScale     float64 `json:"hitScale"`
	CrowdWarning int     `json:"crowdWarning"`
}

type ChaseTuning struct {
	Goal         int     `json:"goal"`
	Runners      int     `json:"runners"`
	DrumrollTime float64 `json:"drumrollTime"`
	RevealTime   float64 `json:"revealTime"`
	CatchRadius  float64 `json:"catchRadius"`
}

type RaceTuning struct {
	Gravity          float64 `json:"gravity"`
	JumpPower        float64 `json:"jumpPower"`
	HighJumpPower    float64 `json:"highJumpPower"`
	HoldThreshold    float64 `json:"holdThreshold"`
	GroundRatio      float64 `json:"groundRatio"`
	ScrollSpeed      float64 `json:"scrollSpeed"`
	CourseLength     float64 `json:"courseLength"`
	PoopSlowdown     float64 `json:"poopSlowdown"`
	MinSpeed         float64 `json:"minSpeed"`
	SlowRecovery     float64 `json:"slowRecovery"`
	MountainPushback float64 `json:"mountainPushback"`
	StarScore        int     `json:"starScore"`
}

type MakeupTuning struct {
	Goal          int `json:"goal"`
	NPCRepeats    int `json:"npcRepeats"`
	MaxWeirdScore int `json:"maxWeirdScore"`
}

type FlushTuning struct {
	Items        int     `json:"items"`
	Goal         int     `json:"goal"`
	PerFlush     int     `json:"perFlush"`
	CollapseTime float64 `json:"collapseTime"`
}

type HideTuning struct {
	Cols          int     `json:"cols"`
	Rows          int     `json:"rows"`
	HideSpots     int     `json:"hideSpots"`
	ColorInterval float64 `json:"colorInterval"`
}

type BattleTuning struct {
	PlayerHP      float64 `json:"playerHp"`
	IntroTime     float64 `json:"introTime"`
	RingStart     float64 `json:"ringStart"`
	RingSpeed     float64 `json:"ringSpeed"`
	TargetRadius  float64 `json:"targetRadius"`
	PerfectRange  float64 `json:"perfectRange"`
	GoodRange     float64 `json:"goodRange"`
	PerfectDamage float64 `json:"perfectDamage"`
	GoodDamage    float64 `json:"goodDamage"`
	MissDamage    float64 `json:"missDamage"`
	DefendWindow  float64 `json:"defendWindow"`
	DefendFactor  float64 `json:"defendFactor"`
	DefendPause   float64 `json:"defendPause"`
	WinHeal       float64 `json:"winHeal"`
}

type ScrollerTuning struct {
	Gravity        float64 `json:"gravity"`
	Thrust         float64 `json:"thrust"`
	MaxUpSpeed     float64 `json:"maxUpSpeed"`
	MaxDownSpeed   float64 `json:"maxDownSpeed"`
	GoalAltitude   float64 `json:"goalAltitude"`
	AltitudeScale  float64 `json:"altitudeScale"`
	Cooldown       float64 `json:"cooldown"`
	HP             int     `json:"hp"`
	InvincibleTime float64 `json:"invincibleTime"`
	StarScore      int     `json:"starScore"`
	UFOBonus       int     `json:"ufoBonus"`
}
