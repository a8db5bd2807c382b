package draw

import "image/color"

// Color is a palette index. Zero means "nothing drawn".
type Color uint8

const (
	None Color = iota
	Sky
	SkyHigh
	Mountain
	Grass
	GrassDark
	Road
	RoadDark
	Rumble
	RumbleAlt
	LaneMark
	CarBody
	CarWindow
	CarLight
	Traffic
	Truck
	Cone
	Motorcycle
	Barrier
	Oil
	Ramp
	Coin
	Boost
	Shield
	Multiplier
	Spark
	Exhaust
	SpeedLine
	Explosion
	Tree
	Trunk
	Building
	Cloud
	Text
	TextDim
	ComboWarm
	ComboHot
	ComboMax
	Achievement
	paletteSize
)

type paletteEntry struct {
	ansi uint8
	rgba color.RGBA
}

var palette = [paletteSize]paletteEntry{
	None:        {0, color.RGBA{0, 0, 0, 0}},
	Sky:         {117, color.RGBA{135, 206, 250, 255}},
	SkyHigh:     {75, color.RGBA{95, 175, 255, 255}},
	Mountain:    {60, color.RGBA{95, 95, 135, 255}},
	Grass:       {34, color.RGBA{0, 175, 0, 255}},
	GrassDark:   {28, color.RGBA{0, 135, 0, 255}},
	Road:        {240, color.RGBA{88, 88, 88, 255}},
	RoadDark:    {238, color.RGBA{68, 68, 68, 255}},
	Rumble:      {196, color.RGBA{255, 0, 0, 255}},
	RumbleAlt:   {231, color.RGBA{255, 255, 255, 255}},
	LaneMark:    {226, color.RGBA{255, 255, 0, 255}},
	CarBody:     {160, color.RGBA{215, 0, 0, 255}},
	CarWindow:   {153, color.RGBA{175, 215, 255, 255}},
	CarLight:    {229, color.RGBA{255, 255, 175, 255}},
	Traffic:     {33, color.RGBA{0, 135, 255, 255}},
	Truck:       {25, color.RGBA{0, 95, 175, 255}},
	Cone:        {208, color.RGBA{255, 135, 0, 255}},
	Motorcycle:  {129, color.RGBA{175, 0, 255, 255}},
	Barrier:     {220, color.RGBA{255, 215, 0, 255}},
	Oil:         {16, color.RGBA{0, 0, 0, 255}},
	Ramp:        {130, color.RGBA{175, 95, 0, 255}},
	Coin:        {220, color.RGBA{255, 215, 0, 255}},
	Boost:       {214, color.RGBA{255, 175, 0, 255}},
	Shield:      {51, color.RGBA{0, 255, 255, 255}},
	Multiplier:  {205, color.RGBA{255, 95, 175, 255}},
	Spark:       {229, color.RGBA{255, 255, 175, 255}},
	Exhaust:     {250, color.RGBA{188, 188, 188, 255}},
	SpeedLine:   {255, color.RGBA{238, 238, 238, 255}},
	Explosion:   {202, color.RGBA{255, 95, 0, 255}},
	Tree:        {22, color.RGBA{0, 95, 0, 255}},
	Trunk:       {94, color.RGBA{135, 95, 0, 255}},
	Building:    {244, color.RGBA{128, 128, 128, 255}},
	Cloud:       {255, color.RGBA{238, 238, 238, 255}},
	Text:        {231, color.RGBA{255, 255, 255, 255}},
	TextDim:     {248, color.RGBA{168, 168, 168, 255}},
	ComboWarm:   {226, color.RGBA{255, 255, 0, 255}},
	ComboHot:    {208, color.RGBA{255, 135, 0, 255}},
	ComboMax:    {196, color.RGBA{255, 0, 0, 255}},
	Achievement: {220, color.RGBA{255, 215, 0, 255}},
}

// ANSI returns the xterm-256 index for c.
func (c Color) ANSI() uint8 {
	if c >= paletteSize {
		return palette[Text].ansi
	}
	return palette[c].ansi
}

// RGBA returns the true-colour value for c.
func (c Color) RGBA() color.RGBA {
	if c >= paletteSize {
		return palette[Text].rgba
	}
	return palette[c].rgba
}
