package catalog

// Static theme registry. Variant lists are ordered; resolution preserves this
// order regardless of the order the user clicked things in.

var themeOrder = []string{
	"seasons",
	"holidays",
	"costumes",
	"decades",
	"impossibleSelfies",
	"hairStyler",
	"headshots",
	"eightiesMall",
	"styleLookbook",
	"socialMedia",
	"stickers",
	"figurines",
}

var themes = map[string]*Theme{
	"seasons": {
		Key:      "seasons",
		Name:     "Seasons",
		Kind:     KindKeyedList,
		KeyOrder: []string{"Spring", "Summer", "Autumn", "Winter"},
		Keyed: map[string][]Variant{
			"Spring": {
				{ID: "Cherry Blossoms", Base: "a stroll beneath blooming cherry blossom trees, petals drifting through soft morning light"},
				{ID: "Garden Picnic", Base: "a cheerful picnic on fresh green grass surrounded by tulips and daffodils"},
				{ID: "Rainy Day", Base: "standing under a clear umbrella in a light spring rain, reflections on the wet pavement"},
				{ID: "Meadow Walk", Base: "walking through a wildflower meadow with rolling hills in the distance"},
			},
			"Summer": {
				{ID: "Beach Day", Base: "a sunny beach with turquoise water, golden sand, and palm trees swaying"},
				{ID: "Boardwalk Sunset", Base: "a seaside boardwalk at golden hour with a warm orange sky"},
				{ID: "Poolside", Base: "lounging poolside with sparkling blue water and bright summer light"},
				{ID: "Road Trip", Base: "leaning against a vintage convertible on a desert highway under a blazing sun"},
			},
			"Autumn": {
				{ID: "Golden Forest", Base: "a forest path covered in golden and crimson leaves with soft autumn light"},
				{ID: "Pumpkin Patch", Base: "a rustic pumpkin patch with hay bales and a weathered wooden fence"},
				{ID: "Cozy Cafe", Base: "sitting by a rain-speckled cafe window with a steaming mug, warm lamplight inside"},
				{ID: "Harvest Festival", Base: "a lively harvest festival with string lights, cider stalls, and falling leaves"},
			},
			"Winter": {
				{ID: "Snowy Street", Base: "a snow-dusted city street at dusk with glowing shop windows"},
				{ID: "Mountain Lodge", Base: "a timber mountain lodge with snow-capped peaks behind and smoke curling from the chimney"},
				{ID: "Ice Skating", Base: "an outdoor ice rink ringed with fairy lights on a crisp evening"},
				{ID: "Frozen Lake", Base: "standing at the edge of a frozen lake under a pale blue winter sky"},
			},
		},
		selectKey:  func(s Selection) string { return s.Season },
		customText: func(s Selection) string { return "" },
	},
	"holidays": {
		Key:      "holidays",
		Name:     "Holidays",
		Kind:     KindKeyedList,
		KeyOrder: []string{"Christmas", "Halloween", "New Year's Eve", "Valentine's Day"},
		Keyed: map[string][]Variant{
			"Christmas": {
				{ID: "By the Tree", Base: "beside a richly decorated Christmas tree with warm twinkling lights and wrapped presents"},
				{ID: "Christmas Market", Base: "a festive European Christmas market with wooden stalls, garlands, and falling snow"},
				{ID: "Fireside", Base: "relaxing by a crackling fireplace hung with stockings, a mug of cocoa in hand"},
				{ID: "Sleigh Ride", Base: "a horse-drawn sleigh ride through a snowy pine forest"},
			},
			"Halloween": {
				{ID: "Haunted Porch", Base: "a porch decorated with carved jack-o'-lanterns, cobwebs, and flickering candles"},
				{ID: "Misty Graveyard", Base: "a moody, fog-covered graveyard under a full moon, cinematic but playful"},
				{ID: "Costume Party", Base: "a lively Halloween costume party with orange and purple lighting"},
				{ID: "Pumpkin Carving", Base: "carving pumpkins at a candlelit wooden table scattered with autumn leaves"},
			},
			"New Year's Eve": {
				{ID: "Fireworks", Base: "a rooftop celebration with fireworks bursting over a city skyline at midnight"},
				{ID: "Champagne Toast", Base: "an elegant party with confetti falling and champagne glasses raised"},
				{ID: "Countdown", Base: "a glittering ballroom countdown with gold balloons and streamers"},
			},
			"Valentine's Day": {
				{ID: "Candlelit Dinner", Base: "a candlelit dinner table with roses and soft bokeh lights"},
				{ID: "Rose Garden", Base: "a romantic rose garden archway in warm evening light"},
				{ID: "City of Love", Base: "a Parisian street scene with cafe tables and heart-shaped balloons"},
			},
		},
		selectKey:  func(s Selection) string { return s.Holiday },
		customText: func(s Selection) string { return "" },
	},
	"costumes": {
		Key:  "costumes",
		Name: "Costumes",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Astronaut", Base: "a detailed astronaut suit, standing in a futuristic launch facility"},
			{ID: "Pirate Captain", Base: "a swashbuckling pirate captain's outfit aboard a weathered wooden ship deck"},
			{ID: "Medieval Knight", Base: "gleaming medieval plate armor in front of a stone castle gate"},
			{ID: "Wizard", Base: "flowing wizard robes with a staff, inside a candlelit library of ancient tomes"},
			{ID: "Superhero", Base: "a sleek superhero suit with a dramatic cape, atop a city rooftop at dusk"},
			{ID: "Film Noir Detective", Base: "a classic trench coat and fedora on a rain-slicked 1940s street"},
		},
		customText: func(s Selection) string { return "" },
	},
	"decades": {
		Key:  "decades",
		Name: "Time Traveler",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "1920s", Base: "the roaring twenties"},
			{ID: "1950s", Base: "the rock-and-roll fifties"},
			{ID: "1970s", Base: "the disco seventies"},
			{ID: "1980s", Base: "the neon eighties"},
			{ID: "1990s", Base: "the grunge nineties"},
			{ID: "2000s", Base: "the Y2K era"},
		},
		customText: func(s Selection) string { return "" },
	},
	"impossibleSelfies": {
		Key:  "impossibleSelfies",
		Name: "Impossible Selfies",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Moon Selfie", Base: "a selfie taken on the lunar surface with Earth rising in the black sky behind"},
			{ID: "Everest Summit", Base: "a triumphant selfie at the summit of Mount Everest above a sea of clouds"},
			{ID: "Deep Sea", Base: "a selfie inside a glass deep-sea observation sphere surrounded by bioluminescent creatures"},
			{ID: "Dinosaur Era", Base: "a selfie in a prehistoric jungle with a curious brachiosaurus in the background"},
			{ID: "Volcano Edge", Base: "a selfie at the rim of an erupting volcano, glowing lava illuminating the scene"},
		},
		customText: func(s Selection) string { return "" },
	},
	"hairStyler": {
		Key:  "hairStyler",
		Name: "Hair Styler",
		Kind: KindFilteredList,
		Prompts: []Variant{
			{ID: "Short", Base: "a short haircut"},
			{ID: "Medium", Base: "a medium-length haircut"},
			{ID: "Long", Base: "a long hairstyle"},
			{ID: "Buzz Cut", Base: "a clean buzz cut"},
			{ID: "Bob", Base: "a sharp chin-length bob"},
			{ID: "Pixie", Base: "a textured pixie cut"},
			{ID: "Curly", Base: "voluminous defined curls"},
			{ID: "Braids", Base: "neatly styled braids"},
			{ID: "Ponytail", Base: "a sleek high ponytail"},
			{ID: "Bun", Base: "an elegant bun"},
		},
		HairColors: []string{"Black", "Dark Brown", "Chestnut", "Blonde", "Platinum", "Auburn", "Red", "Silver", "Pastel Pink", "Blue"},
		selectIDs:  func(s Selection) []string { return s.HairStyles },
		customText: func(s Selection) string { return s.CustomHairStyle },
	},
	"headshots": {
		Key:  "headshots",
		Name: "Pro Headshots",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Business Suit", Base: "wearing a tailored dark business suit with a crisp white shirt"},
			{ID: "Smart Casual", Base: "wearing a smart-casual blazer over a fine-knit sweater"},
			{ID: "Creative", Base: "wearing a stylish turtleneck with minimalist jewelry"},
			{ID: "Startup", Base: "wearing a quality plain t-shirt under an open casual jacket"},
		},
		Expressions: []string{"Friendly Smile", "Confident", "Thoughtful", "Approachable"},
		Poses:       []string{"Forward", "Slight Angle"},
		customText:  func(s Selection) string { return "" },
	},
	"eightiesMall": {
		Key:  "eightiesMall",
		Name: "'80s Mall Shoot",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Classic Pose", Base: "a classic straight-on studio pose, hands folded"},
			{ID: "Over the Shoulder", Base: "a glamour shot looking back over one shoulder"},
			{ID: "Leaning Pose", Base: "a casual lean against an invisible prop, arms crossed"},
			{ID: "Glamour Close-up", Base: "a soft-focus close-up with dramatic studio lighting"},
		},
		AlbumStyles: []string{
			"Dreamy pastel backdrop with laser grid lines and soft studio glow",
			"Bold geometric backdrop with neon pinks and teal accents",
			"Misty gray backdrop with a single dramatic spotlight",
		},
		customText: func(s Selection) string { return "" },
	},
	"styleLookbook": {
		Key:  "styleLookbook",
		Name: "Style Lookbook",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Full Body", Base: "a full-body fashion pose"},
			{ID: "Street Walk", Base: "a candid mid-stride walking pose"},
			{ID: "Seated", Base: "a relaxed seated editorial pose"},
			{ID: "Detail Shot", Base: "a three-quarter pose highlighting outfit details"},
			{ID: "Profile", Base: "a strong profile pose"},
		},
		Styles:     []string{"Streetwear", "Old Money", "Minimalist", "Bohemian", "Avant-Garde", "Vintage"},
		customText: func(s Selection) string { return "" },
	},
	"socialMedia": {
		Key:  "socialMedia",
		Name: "Social Profiles",
		Kind: KindGroupedFilteredList,
		Groups: []Group{
			{
				Name: "Professional",
				Items: []Variant{
					{ID: "LinkedIn", Base: "polished, professional, and trustworthy with soft corporate lighting"},
					{ID: "GitHub", Base: "clean and focused with a subtle tech-inspired backdrop"},
				},
			},
			{
				Name: "Social",
				Items: []Variant{
					{ID: "Instagram", Base: "vibrant, warm, and effortlessly stylish with golden-hour tones"},
					{ID: "X", Base: "sharp and confident with a modern monochrome backdrop"},
					{ID: "Facebook", Base: "friendly and relaxed with natural outdoor light"},
				},
			},
			{
				Name: "Creative",
				Items: []Variant{
					{ID: "TikTok", Base: "playful and energetic with bold colorful lighting"},
					{ID: "YouTube", Base: "bright and engaging with a softly blurred studio background"},
					{ID: "Twitch", Base: "moody gamer aesthetic with purple and blue accent lighting"},
				},
			},
		},
		selectIDs:  func(s Selection) []string { return s.Platforms },
		customText: func(s Selection) string { return s.CustomPlatform },
	},
	"stickers": {
		Key:  "stickers",
		Name: "Stickers",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Cartoon", Base: "a bold cartoon illustration with thick outlines and flat colors"},
			{ID: "Kawaii", Base: "a cute kawaii style with big sparkly eyes and pastel colors"},
			{ID: "Retro Comic", Base: "a retro comic-book style with halftone dots and dramatic shading"},
			{ID: "Watercolor", Base: "a soft watercolor illustration with gentle gradients"},
		},
		customText: func(s Selection) string { return "" },
	},
	"figurines": {
		Key:  "figurines",
		Name: "Figurines",
		Kind: KindFlatList,
		Prompts: []Variant{
			{ID: "Collectible Vinyl", Base: "a stylized collectible vinyl figure on a desk shelf beside its printed box"},
			{ID: "Action Figure", Base: "a fully articulated action figure in a blister pack on a store shelf"},
			{ID: "Claymation", Base: "a handcrafted claymation character on a miniature film set"},
			{ID: "Gashapon", Base: "a tiny capsule-toy figure displayed next to its plastic capsule"},
		},
		customText: func(s Selection) string { return "" },
	},
}
