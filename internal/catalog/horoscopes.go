package catalog

// Signs are listed in calendar order starting from Aries.
var Signs = []string{
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
	"Pisces",
}

var Predictions = []string{
	"A stranger will compliment your shoes, but only the left one.",
	"Avoid pigeons today. They know what you did.",
	"Your microwave is plotting something. Keep an eye on it.",
	"A great fortune awaits you between the couch cushions.",
	"Someone close to you is secretly a very good juggler.",
	"Today is a good day to learn the accordion.",
	"The stars suggest you should not trust anyone named Kevin.",
	"An unexpected sandwich will change your afternoon.",
	"Mercury is in retrograde, and so is your laundry.",
	"You will find exactly what you are looking for in the last place you look.",
	"A cat will judge you harshly. Let it.",
	"Your houseplants are proud of you, even if they do not show it.",
}
