package nec

// TeacPVRCode is a Teac PVR command code.
type TeacPVRCode uint32

// Teac PVR codes are device, sub-device and function bytes.
var (
	TeacPVRAudio        = TeacPVRCode(MakeTeacCode(0xAE, 0x51, 0xBF))
	TeacPVRBlue         = TeacPVRCode(MakeTeacCode(0xFC, 0x03, 0xBF))
	TeacPVRDown         = TeacPVRCode(MakeTeacCode(0xE9, 0x16, 0xBF))
	TeacPVREPG          = TeacPVRCode(MakeTeacCode(0xB2, 0x4D, 0xBF))
	TeacPVRExit         = TeacPVRCode(MakeTeacCode(0xFA, 0x05, 0xBF))
	TeacPVRFav          = TeacPVRCode(MakeTeacCode(0xAA, 0x55, 0xBF))
	TeacPVRForward      = TeacPVRCode(MakeTeacCode(0xB7, 0x48, 0xBF))
	TeacPVRForwardScene = TeacPVRCode(MakeTeacCode(0xF4, 0x0B, 0xBF))
	TeacPVRGoto         = TeacPVRCode(MakeTeacCode(0xE8, 0x17, 0xBF))
	TeacPVRGreen        = TeacPVRCode(MakeTeacCode(0xBF, 0x40, 0xBF))
	TeacPVRInfo         = TeacPVRCode(MakeTeacCode(0xF1, 0x0E, 0xBF))
	TeacPVRLeft         = TeacPVRCode(MakeTeacCode(0xA5, 0x5A, 0xBF))
	TeacPVRList         = TeacPVRCode(MakeTeacCode(0xE7, 0x18, 0xBF))
	TeacPVRMenu         = TeacPVRCode(MakeTeacCode(0xBA, 0x45, 0xBF))
	TeacPVRMute         = TeacPVRCode(MakeTeacCode(0xE6, 0x19, 0xBF))
	TeacPVRNum0         = TeacPVRCode(MakeTeacCode(0xF0, 0x0F, 0xBF))
	TeacPVRNum1         = TeacPVRCode(MakeTeacCode(0xAD, 0x52, 0xBF))
	TeacPVRNum2         = TeacPVRCode(MakeTeacCode(0xAF, 0x50, 0xBF))
	TeacPVRNum3         = TeacPVRCode(MakeTeacCode(0xEF, 0x10, 0xBF))
	TeacPVRNum4         = TeacPVRCode(MakeTeacCode(0xA9, 0x56, 0xBF))
	TeacPVRNum5         = TeacPVRCode(MakeTeacCode(0xAB, 0x54, 0xBF))
	TeacPVRNum6         = TeacPVRCode(MakeTeacCode(0xEB, 0x14, 0xBF))
	TeacPVRNum7         = TeacPVRCode(MakeTeacCode(0xB1, 0x4E, 0xBF))
	TeacPVRNum8         = TeacPVRCode(MakeTeacCode(0xB3, 0x4C, 0xBF))
	TeacPVRNum9         = TeacPVRCode(MakeTeacCode(0xF3, 0x0C, 0xBF))
	TeacPVROK           = TeacPVRCode(MakeTeacCode(0xE5, 0x1A, 0xBF))
	TeacPVROnOff        = TeacPVRCode(MakeTeacCode(0xA6, 0x59, 0xBF))
	TeacPVRPause        = TeacPVRCode(MakeTeacCode(0xBB, 0x44, 0xBF))
	TeacPVRPlay         = TeacPVRCode(MakeTeacCode(0xB9, 0x46, 0xBF))
	TeacPVRRec          = TeacPVRCode(MakeTeacCode(0xA7, 0x58, 0xBF))
	TeacPVRRecall       = TeacPVRCode(MakeTeacCode(0xEC, 0x13, 0xBF))
	TeacPVRRed          = TeacPVRCode(MakeTeacCode(0xBD, 0x42, 0xBF))
	TeacPVRRepeat       = TeacPVRCode(MakeTeacCode(0xF8, 0x07, 0xBF))
	TeacPVRReverse      = TeacPVRCode(MakeTeacCode(0xB5, 0x4A, 0xBF))
	TeacPVRReverseScene = TeacPVRCode(MakeTeacCode(0xF7, 0x08, 0xBF))
	TeacPVRRight        = TeacPVRCode(MakeTeacCode(0xE4, 0x1B, 0xBF))
	TeacPVRStop         = TeacPVRCode(MakeTeacCode(0xFB, 0x04, 0xBF))
	TeacPVRSubtitle     = TeacPVRCode(MakeTeacCode(0xEE, 0x11, 0xBF))
	TeacPVRTTX          = TeacPVRCode(MakeTeacCode(0xF2, 0x0D, 0xBF))
	TeacPVRTVRadio      = TeacPVRCode(MakeTeacCode(0xEA, 0x15, 0xBF))
	TeacPVRUp           = TeacPVRCode(MakeTeacCode(0xF9, 0x06, 0xBF))
	TeacPVRYellow       = TeacPVRCode(MakeTeacCode(0xFF, 0x00, 0xBF))
)

// TeacPVRCodes maps command names to codes.
var TeacPVRCodes = map[string]TeacPVRCode{
	"audio":         TeacPVRAudio,
	"blue":          TeacPVRBlue,
	"down":          TeacPVRDown,
	"epg":           TeacPVREPG,
	"exit":          TeacPVRExit,
	"fav":           TeacPVRFav,
	"forward":       TeacPVRForward,
	"forward_scene": TeacPVRForwardScene,
	"goto":          TeacPVRGoto,
	"green":         TeacPVRGreen,
	"info":          TeacPVRInfo,
	"left":          TeacPVRLeft,
	"list":          TeacPVRList,
	"menu":          TeacPVRMenu,
	"mute":          TeacPVRMute,
	"num0":          TeacPVRNum0,
	"num1":          TeacPVRNum1,
	"num2":          TeacPVRNum2,
	"num3":          TeacPVRNum3,
	"num4":          TeacPVRNum4,
	"num5":          TeacPVRNum5,
	"num6":          TeacPVRNum6,
	"num7":          TeacPVRNum7,
	"num8":          TeacPVRNum8,
	"num9":          TeacPVRNum9,
	"ok":            TeacPVROK,
	"on_off":        TeacPVROnOff,
	"pause":         TeacPVRPause,
	"play":          TeacPVRPlay,
	"rec":           TeacPVRRec,
	"recall":        TeacPVRRecall,
	"red":           TeacPVRRed,
	"repeat":        TeacPVRRepeat,
	"reverse":       TeacPVRReverse,
	"reverse_scene": TeacPVRReverseScene,
	"right":         TeacPVRRight,
	"stop":          TeacPVRStop,
	"subtitle":      TeacPVRSubtitle,
	"ttx":           TeacPVRTTX,
	"tv_radio":      TeacPVRTVRadio,
	"up":            TeacPVRUp,
	"yellow":        TeacPVRYellow,
}
