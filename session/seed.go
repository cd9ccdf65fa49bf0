package session

import "github.com/drake/shelf/form"

// StarterBooks is the library shown on first launch.
var StarterBooks = []form.Entry{
	{Title: "No Longer Human", Author: "Osamu Dazai", Pages: 176, Read: true},
	{Title: "Playing for the Commandant", Author: "Suzy Zail", Pages: 249, Read: false},
	{Title: "I'm Glad My Mom Died", Author: "Jennette McCurdy", Pages: 320, Read: true},
	{Title: "Franny and Zooey", Author: "JD Salinger", Pages: 201, Read: false},
	{Title: "1984", Author: "George Orwell", Pages: 368, Read: true},
	{Title: "The Bell Jar", Author: "Sylvia Plath", Pages: 294, Read: false},
	{Title: "Death of a Salesman", Author: "Arthur Miller", Pages: 144, Read: false},
	{Title: "American Psycho", Author: "Bret Easton Ellis", Pages: 399, Read: false},
	{Title: "Flowers for Algernon", Author: "Daniel Keyes", Pages: 311, Read: true},
	{Title: "Life of the Party", Author: "Olivia Gatwood", Pages: 176, Read: true},
}
