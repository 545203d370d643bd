// Package catalog holds the fixed word lists the generators combine.
// The slices are never modified after program start.
package catalog

var Subjects = []string{
	"Donald Trump",
	"Vladimir Putin",
	"Barrack Obama",
	"Member of the FBI",
	"A group of Los Angelenos",
	"Bill Gates",
	"A dog named Spike",
}

var Actions = []string{
	"launches attack on rabies",
	"cancels tour",
	"fights a walrus",
	"eats worms",
	"declares war on spiders",
	"orders a bowl of cereal",
	"celebrates their Emmy award",
}

var Places = []string{
	"at Olive Garden",
	"in Grand Central Park",
	"on a Disney Cruise",
	"inside the White House",
	"at Coachella",
	"during a baseball game",
	"at the Grand Canyon",
}

// Outlets only decorate a headline, they are not part of its identity.
var Outlets = []string{
	"CNN",
	"Fox News",
	"NBC News",
	"ABC News",
	"CBS News",
	"The New York Times",
	"The Washington Post",
	"USA Today",
	"Associated Press",
	"Reuters",
	"NPR",
	"Bloomberg",
	"The Wall Street Journal",
	"Politico",
	"BBC News America",
}
