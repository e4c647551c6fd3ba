package models

// SeedCatalog is inserted at startup when the item collection is empty.
// Three entries for each of five starter categories.
var SeedCatalog = []Item{
	// Alphabets
	{Category: "alphabets", Key: "A", Label: "Apple", Phonics: "A says ah", Display: "🍎"},
	{Category: "alphabets", Key: "B", Label: "Ball", Phonics: "B says buh", Display: "🟠"},
	{Category: "alphabets", Key: "C", Label: "Cat", Phonics: "C says kuh", Display: "🐱"},
	// Numbers
	{Category: "numbers", Key: "1", Label: "One", Display: "1️⃣"},
	{Category: "numbers", Key: "2", Label: "Two", Display: "2️⃣"},
	{Category: "numbers", Key: "3", Label: "Three", Display: "3️⃣"},
	// Colors
	{Category: "colors", Key: "red", Label: "Red", Display: "🟥"},
	{Category: "colors", Key: "blue", Label: "Blue", Display: "🟦"},
	{Category: "colors", Key: "green", Label: "Green", Display: "🟩"},
	// Animals
	{Category: "animals", Key: "dog", Label: "Dog", Display: "🐶"},
	{Category: "animals", Key: "lion", Label: "Lion", Display: "🦁"},
	{Category: "animals", Key: "bird", Label: "Bird", Display: "🐦"},
	// Shapes
	{Category: "shapes", Key: "circle", Label: "Circle", Display: "⚪"},
	{Category: "shapes", Key: "square", Label: "Square", Display: "🟥"},
	{Category: "shapes", Key: "triangle", Label: "Triangle", Display: "🔺"},
}

// FallbackItems is the sample content served by the item listing when no
// store is connected.
var FallbackItems = []Item{
	{Category: "alphabets", Key: "A", Label: "Apple", Phonics: "A says ah", Display: "🍎"},
	{Category: "alphabets", Key: "B", Label: "Ball", Phonics: "B says buh", Display: "🟠"},
	{Category: "numbers", Key: "1", Label: "One", Display: "1️⃣"},
}

// FallbackQuizPool backs quiz generation when a category has no items or no
// store is connected.
var FallbackQuizPool = []Item{
	{Category: "colors", Key: "red", Label: "Red", Display: "🟥"},
	{Category: "colors", Key: "blue", Label: "Blue", Display: "🟦"},
	{Category: "colors", Key: "green", Label: "Green", Display: "🟩"},
	{Category: "colors", Key: "yellow", Label: "Yellow", Display: "🟨"},
}
