// Package sprite names every drawable figure in the game.
//
// IDs are symbolic; the render package owns the pixels behind them.
package sprite

// ID identifies a sprite.
type ID string

// Characters.
const (
	Hikari      ID = "hikari"
	Boy         ID = "boy"
	GirlRibbon  ID = "girl-ribbon"
	Robot       ID = "robot"
	Cat         ID = "cat"
	Rabbit      ID = "rabbit"
	Oni         ID = "oni"
	Tanjiro     ID = "tanjiro"
	Demon       ID = "demon"
	DemonBoss   ID = "demon-boss"
	Ghost       ID = "ghost"
	Skull       ID = "skull"
	Pumpkin     ID = "pumpkin"
	SpaceHelmet ID = "space-helmet"
)

// Items and scenery.
const (
	Poop         ID = "poop"
	GoldenPoop   ID = "golden-poop"
	Bomb         ID = "bomb"
	Explosion    ID = "explosion"
	WormHead     ID = "worm-head"
	Lightning    ID = "lightning"
	GachaMachine ID = "gacha-machine"
	Coin         ID = "coin"
	Swords       ID = "swords"
	Drum         ID = "drum"
	Bike         ID = "bike"
	Bird         ID = "bird"
	Mountain     ID = "mountain"
	Cloud        ID = "cloud"
	Rainbow      ID = "rainbow"
	FinishFlag   ID = "finish-flag"
	Lipstick     ID = "lipstick"
	Eye          ID = "eye"
	Pencil       ID = "pencil"
	Palette      ID = "palette"
	Heart        ID = "heart"
	Trophy       ID = "trophy"
	Toilet       ID = "toilet"
	WaterDrop    ID = "water-drop"
	Wave         ID = "wave"
	Splash       ID = "splash"
	Door         ID = "door"
	Box          ID = "box"
	Tree         ID = "tree"
	Rock         ID = "rock"
	Sparkle      ID = "sparkle"
	Star         ID = "star"
	GlowStar     ID = "glow-star"
	SwirlStar    ID = "swirl-star"
	Portal       ID = "portal"
	Gamepad      ID = "gamepad"
	Lock         ID = "lock"
	Fire         ID = "fire"
	Celebration  ID = "celebration"
	Knife        ID = "knife"
	WaterSlash   ID = "water-slash"
	ThunderSlash ID = "thunder-slash"
	FireSlash    ID = "fire-slash"
	Katana       ID = "katana"
	BreathCircle ID = "breath-circle"
	FartCloud    ID = "fart-cloud"
	Meteorite    ID = "meteorite"
	Moon         ID = "moon"
	UFO          ID = "ufo"
	RainbowIcon  ID = "rainbow-icon"
	CourseStar   ID = "course-star"
	CoursePoop   ID = "course-poop"
)

// All lists every known sprite in a stable order.
var All = []ID{
	Hikari, Boy, GirlRibbon, Robot, Cat, Rabbit, Oni, Tanjiro, Demon, DemonBoss,
	Ghost, Skull, Pumpkin, SpaceHelmet,
	Poop, GoldenPoop, Bomb, Explosion, WormHead, Lightning, GachaMachine, Coin,
	Swords, Drum, Bike, Bird, Mountain, Cloud, Rainbow, FinishFlag, Lipstick, Eye,
	Pencil, Palette, Heart, Trophy, Toilet, WaterDrop, Wave, Splash, Door, Box,
	Tree, Rock, Sparkle, Star, GlowStar, SwirlStar, Portal, Gamepad, Lock, Fire,
	Celebration, Knife, WaterSlash, ThunderSlash, FireSlash, Katana, BreathCircle,
	FartCloud, Meteorite, Moon, UFO, RainbowIcon, CourseStar, CoursePoop,
}

// Known reports whether id is in All.
func Known(id ID) bool {
	for _, s := range All {
		if s == id {
			return true
		}
	}
	return false
}
