package prompt

import (
	"fmt"
	"strings"

	"pictureme/internal/catalog"
)

// corePreamble pins the subject's identity for every photographic theme.
const corePreamble = "The highest priority is to maintain the exact facial features, likeness, perceived gender, and body type of the person in the provided reference photo. It is critical that the person's masculine or feminine features are preserved. Do not change the person's gender. Do not add any extra people to the photo. Do not add culturally specific elements like henna unless they are clearly present on the person in the original photo. Do not alter the person's core facial structure."

// objectPreamble is the shorter identity clause for themes that turn the
// subject into a non-photographic object (stickers, figurines). It keeps the
// facial-structure and gender constraints but drops the no-added-elements
// clause.
const objectPreamble = "The highest priority is to maintain the exact facial features and likeness of the person in the provided reference photo."

const objectIdentityTail = "It is critical that the person's masculine or feminine features are preserved. Do not alter the person's core facial structure."

// forwardPose is the designated pose value that maps to a camera-facing
// phrase; any other pose selection yields the angled phrase.
const forwardPose = "Forward"

// shortLengthIDs is the fixed set of hairstyle identifiers that trigger the
// texture-preservation clause.
var shortLengthIDs = map[string]struct{}{
	"Short":  {},
	"Medium": {},
	"Long":   {},
}

// Compile builds the final model instruction for one variant. It is pure and
// never fails: unknown theme keys fall back to a generic instruction built
// from the preamble and the variant's base text.
func Compile(themeKey string, v catalog.Variant, sel catalog.Selection) string {
	var instruction string

	switch themeKey {
	case "seasons", "holidays":
		instruction = fmt.Sprintf("%s Transform the image into a scene featuring ONLY the person from the reference photo, based on the following detailed description: %s. The person's clothing should be appropriate for the theme.", corePreamble, v.Base)
	case "costumes":
		instruction = fmt.Sprintf("%s Transform the person in the image to be wearing a costume and in a scene based on the following detailed description: %s.", corePreamble, v.Base)
	case "decades":
		instruction = fmt.Sprintf("%s Keeping the original photo's composition, change the person's hair, clothing, and accessories, as well as the photo's background, to match the style of the %s.", corePreamble, v.ID)
	case "impossibleSelfies":
		instruction = fmt.Sprintf("%s Keeping the original photo's composition as much as possible, place the person into the following scene, changing their clothing, hair, and the background to match: %s.", corePreamble, v.Base)
	case "hairStyler":
		instruction = compileHairStyle(v, sel)
	case "headshots":
		pose := "posed at a slight angle to the camera"
		if sel.Pose == forwardPose {
			pose = "facing forward towards the camera"
		}
		instruction = fmt.Sprintf("%s Transform the image into a professional headshot. The person should be %s with a %q expression. They should be %s. Please maintain the original hairstyle from the photo. The background should be a clean, neutral, out-of-focus studio background (like light gray, beige, or white). The final image should be a well-lit, high-quality professional portrait.", corePreamble, pose, sel.Expression, v.Base)
	case "eightiesMall":
		instruction = fmt.Sprintf("%s Transform the image into a photo from a single 1980s mall photoshoot. The overall style for the entire photoshoot is: %q. For this specific photo, the person should be in %s. The person's hair and clothing should be 80s style and be consistent across all photos in this set. The background and lighting must also match the overall style for every photo.", corePreamble, sel.AlbumStyle, v.Base)
	case "styleLookbook":
		style := sel.LookbookStyle
		if style == "Other" {
			style = sel.CustomLookbookStyle
		}
		instruction = fmt.Sprintf("%s Transform the image into a high-fashion lookbook photo. The overall fashion style for the entire lookbook is %q. For this specific photo, create a unique, stylish outfit that fits the overall style, and place the person in %s in a suitable, fashionable setting. The person's hair and makeup should also complement the style. Each photo in the lookbook should feature a different outfit.", corePreamble, style, v.Base)
	case "socialMedia":
		instruction = fmt.Sprintf("%s Transform the image into a perfect social media profile picture for %q. The desired vibe is: %q. The final image should be a high-quality, eye-catching headshot suitable for a small profile picture format.", corePreamble, v.ID, v.Base)
	case "stickers":
		instruction = fmt.Sprintf("%s Transform the person into a die-cut sticker based on the following style: %s. The sticker must have a thick, white die-cut border around the subject. The background must be transparent. %s The final image should look like a real sticker.", objectPreamble, v.Base, objectIdentityTail)
	case "figurines":
		instruction = fmt.Sprintf("%s Transform the person into a miniature figurine based on the following description, placing it in a realistic environment: %s. %s The final image should look like a real photograph of a physical object.", objectPreamble, v.Base, objectIdentityTail)
	default:
		instruction = fmt.Sprintf("%s Create an image based on the reference photo and this prompt: %s", corePreamble, v.Base)
	}

	if custom := strings.TrimSpace(sel.CustomStyle); custom != "" {
		instruction = strings.TrimSuffix(instruction, ".")
		instruction = fmt.Sprintf("%s, and apply the following custom style: %s.", instruction, custom)
	}

	return instruction
}

func compileHairStyle(v catalog.Variant, sel catalog.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Keeping the original photo's composition, style the person's hair to be a perfect example of %s. If the person's hair already has this style, enhance and perfect it. Do not alter clothing or the background.", corePreamble, v.Base)
	if _, ok := shortLengthIDs[v.ID]; ok {
		b.WriteString(" Maintain the person's original hair texture (e.g., straight, wavy, curly).")
	}
	switch len(sel.HairColors) {
	case 0:
	case 1:
		fmt.Fprintf(&b, " The hair color should be %s.", sel.HairColors[0])
	case 2:
		fmt.Fprintf(&b, " The hair should be a mix of two colors: %s and %s.", sel.HairColors[0], sel.HairColors[1])
	default:
		// Validation caps color selection at two; anything past the first two
		// is ignored.
		fmt.Fprintf(&b, " The hair should be a mix of two colors: %s and %s.", sel.HairColors[0], sel.HairColors[1])
	}
	return b.String()
}
