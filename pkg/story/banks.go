package story

import "github.com/matzehuels/moodart/pkg/art"

// Bank is the vocabulary a mood's stories are assembled from.
type Bank struct {
	Titles     []string `json:"titles"`
	Themes     []string `json:"themes"`
	Characters []string `json:"characters"`
	Settings   []string `json:"settings"`
}

var banks = map[art.Mood]Bank{
	art.Happy: {
		Titles:     []string{"The Sunshine Adventure", "Rainbow Friends", "The Giggling Garden", "Happy Helpers"},
		Themes:     []string{"friendship", "helping others", "celebrating", "sharing joy"},
		Characters: []string{"a cheerful bunny", "a singing bird", "a dancing butterfly", "a smiling sun"},
		Settings:   []string{"a colorful meadow", "a magical playground", "a sunny village", "a flower garden"},
	},
	art.Calm: {
		Titles:     []string{"The Peaceful Lake", "Quiet Forest Friends", "The Gentle Breeze", "Moonlight Dreams"},
		Themes:     []string{"finding peace", "meditation", "gentle friendship", "quiet moments"},
		Characters: []string{"a wise owl", "a gentle deer", "a floating cloud", "a sleepy turtle"},
		Settings:   []string{"a serene lake", "a quiet forest", "a peaceful mountain", "a cozy cave"},
	},
	art.Energetic: {
		Titles:     []string{"The Lightning Race", "Super Speed Adventure", "The Energy Crystal", "Zoom and Dash"},
		Themes:     []string{"racing", "adventure", "overcoming challenges", "teamwork"},
		Characters: []string{"a speedy cheetah", "a lightning bolt", "an energetic squirrel", "a rocket ship"},
		Settings:   []string{"a racing track", "a mountain trail", "a busy city", "an adventure park"},
	},
	art.Mysterious: {
		Titles:     []string{"The Secret Door", "Mystery of the Lost Key", "The Whispering Woods", "Hidden Treasure"},
		Themes:     []string{"solving mysteries", "discovering secrets", "magical discoveries", "hidden worlds"},
		Characters: []string{"a detective mouse", "a magical cat", "a wise wizard", "a curious explorer"},
		Settings:   []string{"an old castle", "a mysterious forest", "a hidden cave", "an ancient library"},
	},
	art.Melancholic: {
		Titles:     []string{"The Rainy Day Friend", "Finding Hope", "The Lonely Star", "After the Storm"},
		Themes:     []string{"finding comfort", "overcoming sadness", "hope after difficulty", "gentle healing"},
		Characters: []string{"a caring teddy bear", "a gentle rain cloud", "an understanding friend", "a warm firefly"},
		Settings:   []string{"a cozy cabin", "a quiet garden", "a peaceful pond", "a warm library"},
	},
	art.Excited: {
		Titles:     []string{"The Big Surprise", "Party Time Adventure", "The Magic Show", "Celebration Day"},
		Themes:     []string{"surprises", "celebrations", "magical moments", "joyful discoveries"},
		Characters: []string{"a party elephant", "a magical unicorn", "a juggling monkey", "a festive peacock"},
		Settings:   []string{"a carnival", "a birthday party", "a circus tent", "a festival ground"},
	},
	art.Adventurous: {
		Titles:     []string{"The Great Expedition", "Mountain Climbers", "Jungle Explorer", "Ocean Voyage"},
		Themes:     []string{"exploration", "courage", "discovering new places", "brave journeys"},
		Characters: []string{"a brave lion", "an explorer bear", "a sailing dolphin", "a climbing monkey"},
		Settings:   []string{"a tall mountain", "a dense jungle", "a vast ocean", "an unexplored island"},
	},
	art.Dreamy: {
		Titles:     []string{"The Cloud Castle", "Starlight Journey", "Dream Weaver", "The Floating Garden"},
		Themes:     []string{"imagination", "magical dreams", "floating adventures", "wish fulfillment"},
		Characters: []string{"a dream fairy", "a cloud sheep", "a star dancer", "a moon rabbit"},
		Settings:   []string{"a cloud kingdom", "a starry sky", "a floating island", "a dream world"},
	},
}

// Placeholders are {character}, {setting} and {theme}. Every template has
// exactly ParagraphCount lines.
var templates = map[art.Mood][ParagraphCount]string{
	art.Happy: {
		"Once upon a time, in {setting}, there lived {character} who loved {theme}.",
		"Every morning, {character} would wake up with a big smile and spread joy throughout {setting}.",
		"One day, {character} discovered that {theme} could make everyone around them happy too.",
		"{character} organized a wonderful celebration where all the friends in {setting} came together.",
		"They laughed, played games, and shared delicious treats under the warm sunshine.",
		"From that day forward, {setting} became known as the happiest place in the world, all thanks to {character}'s kind heart.",
		"And they all lived happily ever after, spreading joy wherever they went! 🌟",
	},
	art.Calm: {
		"In {setting}, so peaceful and still, {character} found the perfect spot for {theme}.",
		"Every evening, {character} would sit quietly and listen to the gentle sounds of nature.",
		"The soft whispers of the wind and the gentle rustling of leaves brought deep peace.",
		"{character} learned that {theme} was the key to finding inner happiness.",
		"Soon, other forest friends joined {character} in these quiet moments.",
		"Together, they discovered that sometimes the most beautiful adventures happen in stillness.",
		"And so, {setting} became a sanctuary of peace for all who needed rest. 🕊️",
	},
	art.Energetic: {
		"{character} was the fastest and most energetic friend in all of {setting}!",
		"Every day brought new opportunities for {theme} and exciting challenges.",
		"One morning, {character} heard about a great race that would test their speed and courage.",
		"With determination and lots of practice, {character} prepared for the big day.",
		"The race was thrilling, with loops, jumps, and obstacles that made everyone cheer!",
		"{character} didn't just win the race, but also helped other friends along the way.",
		"The celebration afterward was filled with high-fives, cheers, and lots of happy energy! ⚡",
	},
	art.Mysterious: {
		"Deep in {setting}, {character} stumbled upon something very mysterious.",
		"It was an old, glowing object that seemed to hold secrets about {theme}.",
		"{character} carefully examined the mysterious discovery, looking for clues.",
		"With each clue they found, the mystery became more and more interesting.",
		"Other curious friends joined {character} in solving the puzzle together.",
		"Finally, they unlocked the secret, which revealed a beautiful hidden world!",
		"The mystery taught them that the best discoveries come to those who stay curious. 🔮",
	},
	art.Melancholic: {
		"On a quiet, cloudy day in {setting}, {character} was feeling a little sad.",
		"Sometimes, even in beautiful places, we can feel lonely or worried.",
		"{character} sat by themselves, thinking about {theme} and wishing for comfort.",
		"Just then, a gentle friend appeared and sat quietly beside {character}.",
		"Without saying much, the friend's presence brought warmth and understanding.",
		"Together, they watched as the clouds slowly parted, revealing a beautiful rainbow.",
		"{character} learned that it's okay to feel sad sometimes, and that friends make everything better. 🌈",
	},
	art.Excited: {
		"{character} could barely contain their excitement about the upcoming {theme}!",
		"All of {setting} was buzzing with anticipation for the special celebration.",
		"{character} helped prepare decorations, games, and wonderful surprises for everyone.",
		"When the big day arrived, the excitement was absolutely magical!",
		"There were colorful balloons, amazing performances, and delightful treats everywhere.",
		"{character} danced and laughed with all their friends until the stars came out.",
		"It was the most exciting day ever, filled with joy, laughter, and unforgettable memories! 🎉",
	},
	art.Adventurous: {
		"{character} was always ready for the next big adventure in {setting}!",
		"One day, they heard about an incredible journey that would test their courage.",
		"With a backpack full of supplies and a heart full of bravery, {character} set off.",
		"The path was challenging, with steep climbs and rushing rivers to cross.",
		"But {character} never gave up, always finding creative solutions to each obstacle.",
		"At the end of the journey, they discovered something more valuable than treasure.",
		"{character} learned that the real adventure was the courage they found within themselves! 🗻",
	},
	art.Dreamy: {
		"In {setting}, where magic drifted on the air, {character} had the most wonderful dreams about {theme}.",
		"Every night, they would float on soft clouds and dance among the twinkling stars.",
		"In their dreams, anything was possible: they could fly, sing with the moon, and paint with starlight.",
		"{character} met other dream friends who shared their love for imagination and wonder.",
		"Together, they created beautiful dream worlds filled with floating castles and singing flowers.",
		"When {character} woke up, they brought some of that dream magic into the real world.",
		"And so, {setting} became a place where dreams and reality danced together beautifully. ✨",
	},
}

// BankFor returns a copy of the vocabulary for m.
func BankFor(m art.Mood) (Bank, bool) {
	b, ok := banks[m]
	if !ok {
		return Bank{}, false
	}
	return Bank{
		Titles:     append([]string(nil), b.Titles...),
		Themes:     append([]string(nil), b.Themes...),
		Characters: append([]string(nil), b.Characters...),
		Settings:   append([]string(nil), b.Settings...),
	}, true
}

// Titles returns the titles a story for m can carry.
func Titles(m art.Mood) []string {
	b, _ := BankFor(m)
	return b.Titles
}
