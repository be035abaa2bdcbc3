package samsung

// Command codes. Each is E:4, F:8, ~F:8 as produced by MakeCode.
const (
	AB           Code = 0xD7287
	Angle        Code = 0xCC337
	Audio        Code = 0xDA257
	Blue         Code = 0xDB247
	Down         Code = 0xE6197
	Eject        Code = 0xFE017
	Exit         Code = 0xD42B7
	Forward      Code = 0xEA157
	ForwardScene Code = 0xEE117
	Green        Code = 0xDD227
	Home         Code = 0xE9167
	Info         Code = 0xE11E7
	Left         Code = 0xE41B7
	Menu         Code = 0xE21D7
	Num0         Code = 0xF40B7
	Num1         Code = 0xFD027
	Num2         Code = 0xFC037
	Num3         Code = 0xFB047
	Num4         Code = 0xFA057
	Num5         Code = 0xF9067
	Num6         Code = 0xF8077
	Num7         Code = 0xF7087
	Num8         Code = 0xF6097
	Num9         Code = 0xF50A7
	OK           Code = 0xE31C7
	OnOff        Code = 0xFF007
	Pause        Code = 0xCD327
	Play         Code = 0xEB147
	Red          Code = 0xDE217
	Repeat       Code = 0xD8277
	Return       Code = 0xE8177
	Reverse      Code = 0xED127
	ReverseScene Code = 0xF20D7
	Right        Code = 0xE51A7
	Screen       Code = 0xC6397
	Stop         Code = 0xEC137
	Subtitle     Code = 0xD9267
	TitleMenu    Code = 0xDF207
	Tools        Code = 0xC53A7
	Up           Code = 0xE7187
	Yellow       Code = 0xDC237
)

// Codes maps command names to codes.
var Codes = map[string]Code{
	"a_b":           AB,
	"angle":         Angle,
	"audio":         Audio,
	"blue":          Blue,
	"down":          Down,
	"eject":         Eject,
	"exit":          Exit,
	"forward":       Forward,
	"forward_scene": ForwardScene,
	"green":         Green,
	"home":          Home,
	"info":          Info,
	"left":          Left,
	"menu":          Menu,
	"num0":          Num0,
	"num1":          Num1,
	"num2":          Num2,
	"num3":          Num3,
	"num4":          Num4,
	"num5":          Num5,
	"num6":          Num6,
	"num7":          Num7,
	"num8":          Num8,
	"num9":          Num9,
	"ok":            OK,
	"on_off":        OnOff,
	"pause":         Pause,
	"play":          Play,
	"red":           Red,
	"repeat":        Repeat,
	"return":        Return,
	"reverse":       Reverse,
	"reverse_scene": ReverseScene,
	"right":         Right,
	"screen":        Screen,
	"stop":          Stop,
	"subtitle":      Subtitle,
	"title_menu":    TitleMenu,
	"tools":         Tools,
	"up":            Up,
	"yellow":        Yellow,
}
