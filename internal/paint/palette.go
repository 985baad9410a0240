package paint

import "image/color"

// Canvas palette shared by the window and terminal renderers.
var (
	Sky    = Even(Hex("#4DC9F6"), Hex("#87CEEB"), Hex("#B0E0E6"))
	Grass  = Even(Hex("#5DBE3E"), Hex("#4AA832"))
	Dirt   = Even(Hex("#D2A356"), Hex("#C19240"))
	Button = Even(Hex("#5BBF2A"), Hex("#4A9E22"))
	Pipe   = []Stop{
		{At: 0, Color: Hex("#5BBF2A")},
		{At: 0.3, Color: Hex("#73D941")},
		{At: 0.7, Color: Hex("#73D941")},
		{At: 1, Color: Hex("#4A9E22")},
	}
	// Body is radial, from 2px off the bird's center out to its edge.
	Body = []Stop{
		{At: 0, Color: Hex("#FFE135")},
		{At: 0.7, Color: Hex("#FFC800")},
		{At: 1, Color: Hex("#E6A800")},
	}

	Tuft       = Hex("#4AA832")
	PipeEdge   = Hex("#3D8A1A")
	BodyEdge   = Hex("#CC8800")
	Wing       = Hex("#E6B800")
	Beak       = Hex("#E85D3A")
	BeakEdge   = Hex("#C04020")
	EyeEdge    = Hex("#333333")
	Pupil      = Hex("#222222")
	Title      = Hex("#FFE135")
	Panel      = Hex("#F5E6C8")
	PanelEdge  = Hex("#8B6914")
	PanelInner = Hex("#D4B66A")
	Alert      = Hex("#D9534F")
	Caption    = Hex("#555555")
	Value      = Hex("#333333")
	Muted      = Hex("#888888")
	White      = Hex("#FFFFFF")
	Black      = color.NRGBA{A: 0xff}
)
