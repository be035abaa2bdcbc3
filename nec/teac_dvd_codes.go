package nec

// TeacDVDCode is a Teac DVD command code.
type TeacDVDCode uint32

const (
	TeacDVDAB           TeacDVDCode = 0xA15EFF00
	TeacDVDAngle        TeacDVDCode = 0xA758FF00
	TeacDVDClear        TeacDVDCode = 0xA35CFF00
	TeacDVDDown         TeacDVDCode = 0xAA55FF00
	TeacDVDDVDUSB       TeacDVDCode = 0xA45BFF00
	TeacDVDEject        TeacDVDCode = 0xF708FF00
	TeacDVDEnter        TeacDVDCode = 0xAD52FF00
	TeacDVDForward      TeacDVDCode = 0xB748FF00
	TeacDVDForwardScene TeacDVDCode = 0xB54AFF00
	TeacDVDLR           TeacDVDCode = 0xA25DFF00
	TeacDVDLanguage     TeacDVDCode = 0xA659FF00
	TeacDVDLeft         TeacDVDCode = 0xAE51FF00
	TeacDVDMenu         TeacDVDCode = 0xAB54FF00
	TeacDVDMute         TeacDVDCode = 0xFA05FF00
	TeacDVDNP           TeacDVDCode = 0xA25DFF00
	TeacDVDNum10Plus    TeacDVDCode = 0xBB44FF00
	TeacDVDNum0         TeacDVDCode = 0xB946FF00
	TeacDVDNum1         TeacDVDCode = 0xF906FF00
	TeacDVDNum2         TeacDVDCode = 0xF807FF00
	TeacDVDNum3         TeacDVDCode = 0xF609FF00
	TeacDVDNum4         TeacDVDCode = 0xF50AFF00
	TeacDVDNum5         TeacDVDCode = 0xF40BFF00
	TeacDVDNum6         TeacDVDCode = 0xBF40FF00
	TeacDVDNum7         TeacDVDCode = 0xBE41FF00
	TeacDVDNum8         TeacDVDCode = 0xBD42FF00
	TeacDVDNum9         TeacDVDCode = 0xBC43FF00
	TeacDVDOnOff        TeacDVDCode = 0xFB04FF00
	TeacDVDOSD          TeacDVDCode = 0xFE01FF00
	TeacDVDPause        TeacDVDCode = 0xB34CFF00
	TeacDVDPBC          TeacDVDCode = 0xA956FF00
	TeacDVDPlay         TeacDVDCode = 0xB44BFF00
	TeacDVDProg         TeacDVDCode = 0xA45BFF00
	TeacDVDRandom       TeacDVDCode = 0xEC13FF00
	TeacDVDRepeat       TeacDVDCode = 0xA15EFF00
	TeacDVDReset        TeacDVDCode = 0xEE11FF00
	TeacDVDReturn       TeacDVDCode = 0xA55AFF00
	TeacDVDReverse      TeacDVDCode = 0xB847FF00
	TeacDVDReverseScene TeacDVDCode = 0xB649FF00
	TeacDVDRight        TeacDVDCode = 0xAC53FF00
	TeacDVDRipping      TeacDVDCode = 0xEF10FF00
	TeacDVDSetup        TeacDVDCode = 0xB14EFF00
	TeacDVDSlow         TeacDVDCode = 0xA35CFF00
	TeacDVDStop         TeacDVDCode = 0xB24DFF00
	TeacDVDSubtitle     TeacDVDCode = 0xA857FF00
	TeacDVDTime         TeacDVDCode = 0xFF00FF00
	TeacDVDTitle        TeacDVDCode = 0xAF50FF00
	TeacDVDUp           TeacDVDCode = 0xB04FFF00
	TeacDVDVideo        TeacDVDCode = 0xBA45FF00
	TeacDVDVolumeDown   TeacDVDCode = 0xFC03FF00
	TeacDVDVolumeUp     TeacDVDCode = 0xFD02FF00
	TeacDVDZoom         TeacDVDCode = 0xED12FF00
)

// TeacDVDCodes maps command names to codes.
var TeacDVDCodes = map[string]TeacDVDCode{
	"a_b":           TeacDVDAB,
	"angle":         TeacDVDAngle,
	"clear":         TeacDVDClear,
	"down":          TeacDVDDown,
	"dvd_usb":       TeacDVDDVDUSB,
	"eject":         TeacDVDEject,
	"enter":         TeacDVDEnter,
	"forward":       TeacDVDForward,
	"forward_scene": TeacDVDForwardScene,
	"l_r":           TeacDVDLR,
	"language":      TeacDVDLanguage,
	"left":          TeacDVDLeft,
	"menu":          TeacDVDMenu,
	"mute":          TeacDVDMute,
	"n_p":           TeacDVDNP,
	"num_10_plus":   TeacDVDNum10Plus,
	"num0":          TeacDVDNum0,
	"num1":          TeacDVDNum1,
	"num2":          TeacDVDNum2,
	"num3":          TeacDVDNum3,
	"num4":          TeacDVDNum4,
	"num5":          TeacDVDNum5,
	"num6":          TeacDVDNum6,
	"num7":          TeacDVDNum7,
	"num8":          TeacDVDNum8,
	"num9":          TeacDVDNum9,
	"on_off":        TeacDVDOnOff,
	"osd":           TeacDVDOSD,
	"pause":         TeacDVDPause,
	"pbc":           TeacDVDPBC,
	"play":          TeacDVDPlay,
	"prog":          TeacDVDProg,
	"random":        TeacDVDRandom,
	"repeat":        TeacDVDRepeat,
	"reset":         TeacDVDReset,
	"return":        TeacDVDReturn,
	"reverse":       TeacDVDReverse,
	"reverse_scene": TeacDVDReverseScene,
	"right":         TeacDVDRight,
	"ripping":       TeacDVDRipping,
	"setup":         TeacDVDSetup,
	"slow":          TeacDVDSlow,
	"stop":          TeacDVDStop,
	"subtitle":      TeacDVDSubtitle,
	"time":          TeacDVDTime,
	"title":         TeacDVDTitle,
	"up":            TeacDVDUp,
	"video":         TeacDVDVideo,
	"volume_down":   TeacDVDVolumeDown,
	"volume_up":     TeacDVDVolumeUp,
	"zoom":          TeacDVDZoom,
}
