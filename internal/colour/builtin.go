package colour

import "slices"

// builtin is the colour table emitted into colours.gen.{h,c}. Values are sRGB;
// the constructors linearise them. Edit this table to add or change colours.
var builtin = List{
	// Greyscale.
	New("White", 1.00, 1.00, 1.00),
	New("Grey90", 0.90, 0.90, 0.90),
	New("Grey85", 0.85, 0.85, 0.85),
	New("Grey80", 0.80, 0.80, 0.80),
	New("Grey70", 0.70, 0.70, 0.70),
	New("Grey60", 0.60, 0.60, 0.60),
	New("Grey50", 0.50, 0.50, 0.50),
	New("Grey45", 0.45, 0.45, 0.45),
	New("Grey40", 0.40, 0.40, 0.40),
	New("Grey35", 0.35, 0.35, 0.35),
	New("Grey30", 0.30, 0.30, 0.30),
	New("Grey25", 0.25, 0.25, 0.25),
	New("Grey20", 0.20, 0.20, 0.20),
	New("Grey15", 0.15, 0.15, 0.15),
	New("Grey10", 0.10, 0.10, 0.10),
	New("Grey5", 0.05, 0.05, 0.05),
	New("Black", 0.00, 0.00, 0.00),

	// Transparency.
	NewAlpha("Transparent", 0.00, 0.00, 0.00, 0.00),
	NewAlpha("BlackHilight", 0.00, 0.00, 0.00, 0.40),
	NewAlpha("WhiteHilight", 1.00, 1.00, 1.00, 0.10),

	// Primaries and friends.
	New("Red", 1.00, 0.00, 0.00),
	New("Green", 0.00, 1.00, 0.00),
	New("Blue", 0.00, 0.00, 1.00),
	New("Yellow", 1.00, 1.00, 0.00),
	New("Cyan", 0.00, 1.00, 1.00),
	New("Magenta", 1.00, 0.00, 1.00),
	New("Orange", 0.90, 0.70, 0.10),
	New("Purple", 0.90, 0.10, 0.90),
	New("DarkRed", 0.60, 0.10, 0.10),
	New("DarkBlue", 0.10, 0.10, 0.60),
	New("LightBlue", 0.40, 0.60, 1.00),
	New("Gold", 1.00, 0.84, 0.00),
	New("Silver", 0.75, 0.75, 0.75),

	// Interface.
	New("FontWhite", 0.95, 0.95, 0.95),
	New("FontGrey", 0.70, 0.70, 0.70),
	New("FontRed", 1.00, 0.40, 0.40),
	New("FontGreen", 0.60, 1.00, 0.40),
	New("FontBlue", 0.40, 0.60, 1.00),
	New("FontYellow", 1.00, 0.80, 0.20),
	New("FontPurple", 0.90, 0.40, 1.00),
	New("Friend", 0.00, 0.80, 1.00),
	New("Hostile", 0.90, 0.20, 0.20),
	New("Neutral", 0.90, 0.90, 0.20),
	New("Restricted", 1.00, 0.60, 0.00),
	New("Inert", 0.85, 0.85, 0.85),
	NewAlpha("ToolbarBackground", 0.06, 0.06, 0.08, 0.90),
	NewAlpha("ToolbarBorder", 0.30, 0.30, 0.35, 1.00),
	NewAlpha("MapRoute", 0.80, 0.80, 0.20, 0.75),
	NewAlpha("MapNebula", 0.60, 0.20, 0.80, 0.50),
	NewAlpha("MapMarker", 1.00, 0.50, 0.00, 0.90),
}

// Builtin returns a copy of the built-in colour table.
func Builtin() List {
	return slices.Clone(builtin)
}
