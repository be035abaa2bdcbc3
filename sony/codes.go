package sony

// Television command codes.
const (
	Apps          Code = 0x7D | 0x1A<<commandBits | tag15
	Audio         Code = 0x17 | 0x01<<commandBits | tag12
	Blue          Code = 0x24 | 0x97<<commandBits | tag15
	ChannelDown   Code = 0x11 | 0x01<<commandBits | tag12
	ChannelUp     Code = 0x10 | 0x01<<commandBits | tag12
	DigitalAnalog Code = 0x0D | 0x77<<commandBits | tag15
	Discover      Code = 0x73 | 0x1A<<commandBits | tag15
	Down          Code = 0x75 | 0x01<<commandBits | tag12
	Football      Code = 0x76 | 0x1A<<commandBits | tag15
	Forward       Code = 0x1C | 0x97<<commandBits | tag15
	Green         Code = 0x26 | 0x97<<commandBits | tag15
	Guide         Code = 0x5B | 0xA4<<commandBits | tag15
	Help          Code = 0x7B | 0x1A<<commandBits | tag15
	Home          Code = 0x60 | 0x01<<commandBits | tag12
	IPlus         Code = 0x3A | 0x01<<commandBits | tag12
	Left          Code = 0x34 | 0x01<<commandBits | tag12
	Mute          Code = 0x14 | 0x01<<commandBits | tag12
	Num0          Code = 0x09 | 0x01<<commandBits | tag12
	Num1          Code = 0x00 | 0x01<<commandBits | tag12
	Num2          Code = 0x01 | 0x01<<commandBits | tag12
	Num3          Code = 0x02 | 0x01<<commandBits | tag12
	Num4          Code = 0x03 | 0x01<<commandBits | tag12
	Num5          Code = 0x04 | 0x01<<commandBits | tag12
	Num6          Code = 0x05 | 0x01<<commandBits | tag12
	Num7          Code = 0x06 | 0x01<<commandBits | tag12
	Num8          Code = 0x07 | 0x01<<commandBits | tag12
	Num9          Code = 0x08 | 0x01<<commandBits | tag12
	OK            Code = 0x65 | 0x01<<commandBits | tag12
	OnOff         Code = 0x15 | 0x01<<commandBits | tag12
	On            Code = 0x2E | 0x01<<commandBits | tag12
	Off           Code = 0x2F | 0x01<<commandBits | tag12
	Options       Code = 0x36 | 0x97<<commandBits | tag15
	Pause         Code = 0x19 | 0x97<<commandBits | tag15
	Play          Code = 0x1A | 0x97<<commandBits | tag15
	Record        Code = 0x20 | 0x97<<commandBits | tag15
	Red           Code = 0x25 | 0x97<<commandBits | tag15
	RelatedSearch Code = 0x7E | 0x1A<<commandBits | tag15
	Return        Code = 0x23 | 0x97<<commandBits | tag15
	Reverse       Code = 0x1B | 0x97<<commandBits | tag15
	Right         Code = 0x33 | 0x01<<commandBits | tag12
	SocialView    Code = 0x74 | 0x1A<<commandBits | tag15
	Source        Code = 0x25 | 0x01<<commandBits | tag12
	SourceTV      Code = 36 | 0x01<<commandBits | tag12
	SourceHDMI1   Code = 90 | 26<<commandBits | tag15
	SourceHDMI2   Code = 91 | 26<<commandBits | tag15
	SourceHDMI3   Code = 92 | 26<<commandBits | tag15
	SourceHDMI4   Code = 93 | 26<<commandBits | tag15
	SourceHDMI5   Code = 94 | 26<<commandBits | tag15
	Source1       Code = 0x40 | 0x01<<commandBits | tag12
	Source2       Code = 0x41 | 0x01<<commandBits | tag12
	Source3       Code = 0x42 | 0x01<<commandBits | tag12
	SourceRGB1    Code = 0x43 | 0x01<<commandBits | tag12
	SourceRGB2    Code = 0x44 | 0x01<<commandBits | tag12
	Source4       Code = 0x47 | 0x01<<commandBits | tag12
	Source5       Code = 0x48 | 0x01<<commandBits | tag12
	Source6       Code = 0x49 | 0x01<<commandBits | tag12
	Standby       Code = 0x2F | 0x01<<commandBits | tag12
	Stop          Code = 0x18 | 0x97<<commandBits | tag15
	Swap          Code = 0x3B | 0x01<<commandBits | tag12
	SyncMenu      Code = 0x58 | 0x1A<<commandBits | tag15
	Title         Code = 0x65 | 0x1A<<commandBits | tag15
	TVPause       Code = 0x67 | 0x1A<<commandBits | tag15
	Unknown       Code = 0x28 | 0x97<<commandBits | tag15
	Up            Code = 0x74 | 0x01<<commandBits | tag12
	VolumeDown    Code = 0x13 | 0x01<<commandBits | tag12
	VolumeUp      Code = 0x12 | 0x01<<commandBits | tag12
	Yellow        Code = 0x27 | 0x97<<commandBits | tag15
)

// Codes maps command names to codes.
var Codes = map[string]Code{
	"apps":           Apps,
	"audio":          Audio,
	"blue":           Blue,
	"channel_down":   ChannelDown,
	"channel_up":     ChannelUp,
	"digital_analog": DigitalAnalog,
	"discover":       Discover,
	"down":           Down,
	"football":       Football,
	"forward":        Forward,
	"green":          Green,
	"guide":          Guide,
	"help":           Help,
	"home":           Home,
	"i_plus":         IPlus,
	"left":           Left,
	"mute":           Mute,
	"num0":           Num0,
	"num1":           Num1,
	"num2":           Num2,
	"num3":           Num3,
	"num4":           Num4,
	"num5":           Num5,
	"num6":           Num6,
	"num7":           Num7,
	"num8":           Num8,
	"num9":           Num9,
	"ok":             OK,
	"on_off":         OnOff,
	"on":             On,
	"off":            Off,
	"options":        Options,
	"pause":          Pause,
	"play":           Play,
	"record":         Record,
	"red":            Red,
	"related_search": RelatedSearch,
	"return":         Return,
	"reverse":        Reverse,
	"right":          Right,
	"social_view":    SocialView,
	"source":         Source,
	"source_tv":      SourceTV,
	"source_hdmi_1":  SourceHDMI1,
	"source_hdmi_2":  SourceHDMI2,
	"source_hdmi_3":  SourceHDMI3,
	"source_hdmi_4":  SourceHDMI4,
	"source_hdmi_5":  SourceHDMI5,
	"source_1":       Source1,
	"source_2":       Source2,
	"source_3":       Source3,
	"source_rgb1":    SourceRGB1,
	"source_rgb2":    SourceRGB2,
	"source_4":       Source4,
	"source_5":       Source5,
	"source_6":       Source6,
	"standby":        Standby,
	"stop":           Stop,
	"swap":           Swap,
	"sync_menu":      SyncMenu,
	"title":          Title,
	"tv_pause":       TVPause,
	"unknown":        Unknown,
	"up":             Up,
	"volume_down":    VolumeDown,
	"volume_up":      VolumeUp,
	"yellow":         Yellow,
}
