// ABOUTME: Built-in community story catalog, ready to clone into a user library
// ABOUTME: Catalog stories carry an author; clones strip it and regenerate ids

package catalog

import "github.com/quillworks/storywizard/internal/story"

var communityStories = []story.Story{
	{
		ID:      "community-1",
		Title:   "The Crimson Cipher",
		Author:  "Aria Vance",
		Genre:   "Cyberpunk Mystery",
		Tone:    "Noir, Tense",
		Outline: "In the rain-slicked metropolis of Neo-Alexandria, a disillusioned data-detective uncovers a conspiracy that reaches the highest echelons of the city's AI government when he investigates the disappearance of a famed bio-engineer.",
		Chapters: []story.Chapter{
			{ID: "c1-1", Title: "A Ghost in the Machine", Content: "Detective Kaelen is hired to find a missing person in the neon-drenched underbelly of the city.", TensionLevel: story.TensionLow},
			{ID: "c1-2", Title: "Echoes of the Past", Content: "The case leads Kael to an abandoned data haven, where he finds cryptic clues left behind by the engineer.", TensionLevel: story.TensionMedium},
		},
		Characters: []story.Character{
			{
				ID: "char-c1-1", Name: `Kaelen "Kael" Rourke`, Gender: story.GenderMale, Age: "35", Species: "Human", Role: "Protagonist",
				PersonalityArchetypes: []string{"Cynical", "Perceptive", "Weary"}, MoralAlignment: "Chaotic Good",
				Motivations: []string{"Uncover the truth"}, Fears: []string{"His past catching up to him"},
				Appearance: story.Appearance{Height: `6'1"`, Build: "Lean", HairColor: "Black", EyeColor: "Grey", DistinctiveFeatures: "A cybernetic left eye that glows faintly."},
				Backstory:  "A former corporate enforcer who left the life after a job went wrong. Now he takes cases the city police won't touch.",
				Relationships: "Haunted by the memory of his former partner.", DialogueStyle: "Short, sarcastic, and to the point.",
			},
		},
		Worlds: []story.World{
			{ID: "world-c1-1", Name: "Neo-Alexandria", Description: `A sprawling, vertical city governed by a council of AIs. Corporations hold immense power, and the gap between the rich and poor is a literal vertical mile.`, Geography: `Built in the crater of an old asteroid impact, the city stretches from the toxic "Sump" to the pristine "Spire".`, Culture: "A society obsessed with data, body modification, and virtual realities."},
		},
		Items:         []story.Item{},
		Illustrations: []story.Illustration{},
	},
	{
		ID:      "community-2",
		Title:   "Whispers of the Sunstone",
		Author:  "Elara Meadowlight",
		Genre:   "High Fantasy",
		Tone:    "Epic, Hopeful",
		Outline: "A young village healer discovers she is the last in a line of ancient guardians tasked with protecting a powerful artifact, the Sunstone, from a creeping shadow that threatens to consume the light from the world.",
		Chapters: []story.Chapter{
			{ID: "c2-1", Title: "An Unwanted Inheritance", Content: "Lyra's quiet life is shattered when a mysterious stranger reveals her true lineage.", TensionLevel: story.TensionLow},
			{ID: "c2-2", Title: "The Shadow's Grasp", Content: "The village is attacked by shadow creatures, forcing Lyra to use her nascent powers to defend her home.", TensionLevel: story.TensionHigh},
		},
		Characters: []story.Character{
			{
				ID: "char-c2-1", Name: "Lyra", Gender: story.GenderFemale, Age: "19", Species: "Human", Role: "Protagonist",
				PersonalityArchetypes: []string{"Kind", "Determined", "Insecure"}, MoralAlignment: "Lawful Good",
				Motivations: []string{"Protect her home", "Live up to her legacy"}, Fears: []string{"Failure", "The darkness within"},
				Appearance: story.Appearance{Height: `5'6"`, Build: "Slender", HairColor: "Golden Blonde", EyeColor: "Green", DistinctiveFeatures: "A faint birthmark on her wrist shaped like a sunburst."},
				Backstory:  "An orphan raised by the village elder, Lyra always felt like an outsider until she discovered her true purpose.",
				Relationships: "Views the village elder as a grandmother; is wary of the stranger who brought her the news.", DialogueStyle: "Warm and empathetic, but firm when needed.",
			},
		},
		Worlds: []story.World{
			{ID: "world-c2-1", Name: "Aethelgard", Description: "A vibrant world of lush forests, ancient mountains, and shimmering rivers, all sustained by the light of the Sunstone.", Geography: "The story begins in the secluded village of Oakhaven, nestled in the heart of the Elderwood.", Culture: "A peaceful, nature-worshipping society that has forgotten the ancient evils of the past."},
		},
		Items: []story.Item{
			{ID: "item-c2-1", Name: "The Sunstone Pendant", Description: "A smooth, warm stone that emits a soft golden light. It is the key to holding back the encroaching Shadow."},
		},
		Illustrations: []story.Illustration{},
	},
	{
		ID:      "community-3",
		Title:   "Star-Crossed Odyssey",
		Author:  "Jax Stardust",
		Genre:   "Space Opera",
		Tone:    "Adventurous, Humorous",
		Outline: "A down-on-his-luck cargo pilot and his snarky android co-pilot accidentally intercept a cryptic message that puts them in the crosshairs of a tyrannical galactic empire, forcing them on a wild journey across the cosmos.",
		Chapters: []story.Chapter{
			{ID: "c3-1", Title: "The Wrong Delivery", Content: "Captain Rex gets more than he bargained for when a simple cargo run turns out to be a pickup for a fugitive princess.", TensionLevel: story.TensionMedium},
		},
		Characters: []story.Character{
			{
				ID: "char-c3-1", Name: `Captain Rex "Rocket" Riggs`, Gender: story.GenderMale, Age: "28", Species: "Human", Role: "Protagonist",
				PersonalityArchetypes: []string{"Impulsive", "Charismatic", "Resourceful"}, MoralAlignment: "Chaotic Good",
				Motivations: []string{"Pay off his debts", "Stick it to the Empire"}, Fears: []string{"Being alone", "Running out of fuel"},
				Appearance: story.Appearance{Height: `5'11"`, Build: "Wiry", HairColor: "Red", EyeColor: "Blue", DistinctiveFeatures: "A charmingly crooked smile and a worn leather jacket."},
				Backstory:  `A former starfighter pilot for the rebellion, dishonorably discharged for "creative insubordination." Now he flies his rust-bucket ship, The Comet, for anyone who pays.`,
				Relationships: "Constant bickering but deep loyalty with his android co-pilot, C-42.", DialogueStyle: "Witty, fast-talking, and full of bravado.",
			},
		},
		Worlds: []story.World{
			{ID: "world-c3-1", Name: "The Outer Rim", Description: "A lawless expanse of space filled with asteroid fields, smugglers' dens, and forgotten colonies, all under the iron fist of the Galthan Empire.", Geography: "The story starts on the grimy spaceport of Xylos.", Culture: "A melting pot of alien species, all trying to survive."},
		},
		Items:         []story.Item{},
		Illustrations: []story.Illustration{},
	},
}

// Stories returns deep copies of the catalog so callers can never mutate the
// built-in templates.
func Stories() []*story.Story {
	out := make([]*story.Story, len(communityStories))
	for i := range communityStories {
		out[i] = communityStories[i].Clone()
	}
	return out
}

// Find returns a deep copy of the catalog story with the given id, or false.
func Find(id string) (*story.Story, bool) {
	for i := range communityStories {
		if communityStories[i].ID == id {
			return communityStories[i].Clone(), true
		}
	}
	return nil, false
}
