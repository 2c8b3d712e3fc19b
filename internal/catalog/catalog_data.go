package catalog

const (
	imageRing               = "/assets/product-ring.jpg"
	imageNecklace           = "/assets/product-necklace.jpg"
	imageEarrings           = "/assets/product-earrings.jpg"
	imageBangles            = "/assets/product-bangles.jpg"
	imagePendant            = "/assets/product-pendant.jpg"
	imageBracelet           = "/assets/product-bracelet.jpg"
	imageSapphireRing       = "/assets/product-sapphire-ring.jpg"
	imageChandelierEarrings = "/assets/product-chandelier-earrings.jpg"
)

var products = []Product{
	{
		ID:            "1",
		Name:          "Eternal Diamond Solitaire",
		Price:         285000,
		OriginalPrice: 320000,
		Image:         imageRing,
		Images:        []string{imageRing, imageRing, imageRing},
		Category:      CategoryRings,
		Collection:    "Timeless",
		Description:   "A breathtaking solitaire ring featuring a 2-carat brilliant-cut diamond, set in 18k white gold. The epitome of eternal elegance.",
		Details:       []string{"2-carat brilliant-cut diamond", "18k white gold setting", "VS1 clarity, F color", "GIA certified"},
		Materials:     "18K White Gold, Natural Diamond",
		IsNew:         true,
		IsBestseller:  true,
	},
	{
		ID:           "2",
		Name:         "Royal Heritage Necklace",
		Price:        425000,
		Image:        imageNecklace,
		Images:       []string{imageNecklace, imageNecklace, imageNecklace},
		Category:     CategoryNecklaces,
		Collection:   "Heritage",
		Description:  "An exquisite statement necklace inspired by royal heritage, featuring intricate gold filigree work adorned with natural emeralds and diamonds.",
		Details:      []string{"Natural Colombian emeralds", "Brilliant-cut diamonds", "Hand-crafted filigree", "22k gold"},
		Materials:    "22K Gold, Emeralds, Diamonds",
		IsBestseller: true,
	},
	{
		ID:            "3",
		Name:          "Celestial Pearl Drops",
		Price:         95000,
		OriginalPrice: 115000,
		Image:         imageEarrings,
		Images:        []string{imageEarrings, imageEarrings},
		Category:      CategoryEarrings,
		Collection:    "Celestial",
		Description:   "Elegant drop earrings featuring lustrous South Sea pearls suspended from diamond-encrusted crescents in 18k yellow gold.",
		Details:       []string{"South Sea pearls (12mm)", "18k yellow gold", "Diamond accents (0.5 ctw)", "Secure butterfly backs"},
		Materials:     "18K Yellow Gold, South Sea Pearls, Diamonds",
		IsNew:         true,
	},
	{
		ID:          "4",
		Name:        "Maharani Bangles Set",
		Price:       185000,
		Image:       imageBangles,
		Category:    CategoryBangles,
		Collection:  "Heritage",
		Description: "A luxurious set of three hand-crafted bangles featuring traditional Indian artistry with contemporary elegance. Ruby and diamond accents.",
		Details:     []string{"Set of 3 bangles", "Natural rubies", "Diamond melee", "22k gold"},
		Materials:   "22K Gold, Rubies, Diamonds",
	},
	{
		ID:           "5",
		Name:         "Aurora Diamond Pendant",
		Price:        165000,
		Image:        imagePendant,
		Category:     CategoryPendants,
		Collection:   "Celestial",
		Description:  "A mesmerizing pendant featuring a 1.5-carat pear-shaped diamond surrounded by a halo of smaller brilliants, evoking the northern lights.",
		Details:      []string{"1.5-carat pear diamond", "Diamond halo setting", "18k white gold", "Includes 18\" chain"},
		Materials:    "18K White Gold, Diamonds",
		IsNew:        true,
		IsBestseller: true,
	},
	{
		ID:           "6",
		Name:         "Infinity Tennis Bracelet",
		Price:        245000,
		Image:        imageBracelet,
		Category:     CategoryBracelets,
		Collection:   "Timeless",
		Description:  "A classic tennis bracelet reimagined with 5 carats of round brilliant diamonds set in platinum, symbolizing infinite love.",
		Details:      []string{"5 carats total weight", "Round brilliant diamonds", "Platinum setting", "Secure box clasp"},
		Materials:    "Platinum, Natural Diamonds",
		IsBestseller: true,
	},
	{
		ID:          "7",
		Name:        "Sapphire Cocktail Ring",
		Price:       195000,
		Image:       imageSapphireRing,
		Category:    CategoryRings,
		Collection:  "Heritage",
		Description: "A stunning cocktail ring featuring a 3-carat Ceylon sapphire surrounded by baguette and round diamonds in an art deco setting.",
		Details:     []string{"3-carat Ceylon sapphire", "Baguette & round diamonds", "18k white gold", "Art deco design"},
		Materials:   "18K White Gold, Sapphire, Diamonds",
	},
	{
		ID:            "8",
		Name:          "Golden Cascades Earrings",
		Price:         125000,
		OriginalPrice: 145000,
		Image:         imageChandelierEarrings,
		Category:      CategoryEarrings,
		Collection:    "Timeless",
		Description:   "Dramatic chandelier earrings featuring cascading golden leaves adorned with champagne diamonds for an unforgettable statement.",
		Details:       []string{"Champagne diamonds", "18k yellow gold", "Chandelier design", "Post with omega backs"},
		Materials:     "18K Yellow Gold, Champagne Diamonds",
		IsNew:         true,
	},
}

var collections = []Collection{
	{
		ID:          "timeless",
		Name:        "Timeless",
		Description: "Classic designs that transcend trends",
		Image:       imageBracelet,
	},
	{
		ID:          "heritage",
		Name:        "Heritage",
		Description: "Inspired by royal Indian craftsmanship",
		Image:       imageBangles,
	},
	{
		ID:          "celestial",
		Name:        "Celestial",
		Description: "Ethereal pieces inspired by the cosmos",
		Image:       imagePendant,
	},
}
