package corpus

import _ "embed"

//go:embed data/english.txt
var englishText string

// goodSamples are well-formed English strings; their average score anchors
// the loose end of calibration.
var goodSamples = []string{
	"hello world",
	"the quick brown fox jumps over the lazy dog",
	"please leave a message after the tone",
	"see you tomorrow at the usual place",
	"thanks for the update",
	"it was a pleasure meeting you",
	"the meeting is scheduled for monday morning",
	"let me know if you have any questions",
	"the weather is lovely today",
	"this is a perfectly normal sentence",
	"reading is one of my favorite things to do",
	"the train leaves at half past nine",
	"dinner will be ready in twenty minutes",
	"she walked home along the river",
}

// badSamples are keyboard mashes and letter salad; their average score
// anchors the strict end of calibration.
var badSamples = []string{
	"asdf asdf",
	"qwerty uiop",
	"zxcvbnm zxcvb",
	"sdfgsdfg wertwert",
	"kjhgfdkjhgfd",
	"qpwoeiruty",
	"mnbvcxz lkjhgf",
	"xkcd qzwx jvkf",
	"fjdksl fjdksla",
	"gggg hhhh jjjj",
	"zzqx wvbk",
	"aoeuidhtns aoeu",
	"plokijuhy gtfr",
	"vbnm vbnm vbnm",
}

// English returns the embedded default training text.
func English() string { return englishText }

// GoodSamples returns a copy of the default well-formed sample set.
func GoodSamples() []string { return clone(goodSamples) }

// BadSamples returns a copy of the default gibberish sample set.
func BadSamples() []string { return clone(badSamples) }

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
