package nec

// LaserDVDCode is a Laser DVD command code.
type LaserDVDCode uint32

const (
	LaserDVDAB           LaserDVDCode = 0xAA55FF00
	LaserDVDAngle        LaserDVDCode = 0xF00FFF00
	LaserDVDAudio        LaserDVDCode = 0xBC43FF00
	LaserDVDChannel      LaserDVDCode = 0xE718FF00
	LaserDVDClear        LaserDVDCode = 0xAB54FF00
	LaserDVDCopyDelete   LaserDVDCode = 0xEA15FF00
	LaserDVDDown         LaserDVDCode = 0xB748FF00
	LaserDVDDVDUSB       LaserDVDCode = 0xF807FF00
	LaserDVDEject        LaserDVDCode = 0xFF00FF00
	LaserDVDForward      LaserDVDCode = 0xEF10FF00
	LaserDVDForwardScene LaserDVDCode = 0xE31CFF00
	LaserDVDLeft         LaserDVDCode = 0xB34CFF00
	LaserDVDMark         LaserDVDCode = 0xEC13FF00
	LaserDVDMenu         LaserDVDCode = 0xF40BFF00
	LaserDVDMute         LaserDVDCode = 0xA35CFF00
	LaserDVDNum0         LaserDVDCode = 0xB24DFF00
	LaserDVDNum1         LaserDVDCode = 0xF20DFF00
	LaserDVDNum2         LaserDVDCode = 0xF609FF00
	LaserDVDNum3         LaserDVDCode = 0xFA05FF00
	LaserDVDNum4         LaserDVDCode = 0xB04FFF00
	LaserDVDNum5         LaserDVDCode = 0xB44BFF00
	LaserDVDNum6         LaserDVDCode = 0xB847FF00
	LaserDVDNum7         LaserDVDCode = 0xB14EFF00
	LaserDVDNum8         LaserDVDCode = 0xB54AFF00
	LaserDVDNum9         LaserDVDCode = 0xB946FF00
	LaserDVDOK           LaserDVDCode = 0xF906FF00
	LaserDVDOnOff        LaserDVDCode = 0xF30CFF00
	LaserDVDOSD          LaserDVDCode = 0xA25DFF00
	LaserDVDPause        LaserDVDCode = 0xEB14FF00
	LaserDVDPausePlay    LaserDVDCode = 0xE817FF00
	LaserDVDPBC          LaserDVDCode = 0xE619FF00
	LaserDVDPlay         LaserDVDCode = 0xA05FFF00
	LaserDVDProg         LaserDVDCode = 0xBD42FF00
	LaserDVDQPlay        LaserDVDCode = 0xE916FF00
	LaserDVDRepeat       LaserDVDCode = 0xAE51FF00
	LaserDVDReturn       LaserDVDCode = 0xEE11FF00
	LaserDVDReverse      LaserDVDCode = 0xA857FF00
	LaserDVDReverseScene LaserDVDCode = 0xA45BFF00
	LaserDVDRight        LaserDVDCode = 0xBF40FF00
	LaserDVDSearch       LaserDVDCode = 0xBA45FF00
	LaserDVDSetup        LaserDVDCode = 0xFC03FF00
	LaserDVDSlow         LaserDVDCode = 0xA758FF00
	LaserDVDStep         LaserDVDCode = 0xED12FF00
	LaserDVDStop         LaserDVDCode = 0xF50AFF00
	LaserDVDSubtitle     LaserDVDCode = 0xFE01FF00
	LaserDVDTitle        LaserDVDCode = 0xAF50FF00
	LaserDVDUp           LaserDVDCode = 0xBB44FF00
	LaserDVDVideo        LaserDVDCode = 0xA659FF00
	LaserDVDVolumeDown   LaserDVDCode = 0xF708FF00
	LaserDVDVolumeUp     LaserDVDCode = 0xFB04FF00
	LaserDVDZoom         LaserDVDCode = 0xBE41FF00
)

// LaserDVDCodes maps command names to codes.
var LaserDVDCodes = map[string]LaserDVDCode{
	"a_b":           LaserDVDAB,
	"angle":         LaserDVDAngle,
	"audio":         LaserDVDAudio,
	"channel":       LaserDVDChannel,
	"clear":         LaserDVDClear,
	"copy_delete":   LaserDVDCopyDelete,
	"down":          LaserDVDDown,
	"dvd_usb":       LaserDVDDVDUSB,
	"eject":         LaserDVDEject,
	"forward":       LaserDVDForward,
	"forward_scene": LaserDVDForwardScene,
	"left":          LaserDVDLeft,
	"mark":          LaserDVDMark,
	"menu":          LaserDVDMenu,
	"mute":          LaserDVDMute,
	"num0":          LaserDVDNum0,
	"num1":          LaserDVDNum1,
	"num2":          LaserDVDNum2,
	"num3":          LaserDVDNum3,
	"num4":          LaserDVDNum4,
	"num5":          LaserDVDNum5,
	"num6":          LaserDVDNum6,
	"num7":          LaserDVDNum7,
	"num8":          LaserDVDNum8,
	"num9":          LaserDVDNum9,
	"ok":            LaserDVDOK,
	"on_off":        LaserDVDOnOff,
	"osd":           LaserDVDOSD,
	"pause":         LaserDVDPause,
	"pause_play":    LaserDVDPausePlay,
	"pbc":           LaserDVDPBC,
	"play":          LaserDVDPlay,
	"prog":          LaserDVDProg,
	"q_play":        LaserDVDQPlay,
	"repeat":        LaserDVDRepeat,
	"return":        LaserDVDReturn,
	"reverse":       LaserDVDReverse,
	"reverse_scene": LaserDVDReverseScene,
	"right":         LaserDVDRight,
	"search":        LaserDVDSearch,
	"setup":         LaserDVDSetup,
	"slow":          LaserDVDSlow,
	"step":          LaserDVDStep,
	"stop":          LaserDVDStop,
	"subtitle":      LaserDVDSubtitle,
	"title":         LaserDVDTitle,
	"up":            LaserDVDUp,
	"video":         LaserDVDVideo,
	"volume_down":   LaserDVDVolumeDown,
	"volume_up":     LaserDVDVolumeUp,
	"zoom":          LaserDVDZoom,
}
