package market

import "agroweather/manager"

type Category string

const (
	Fertilizer Category = "fertilizer"
	Seed       Category = "seed"
	Chemical   Category = "chemical"
	Other      Category = "other"
)

type Product struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"` // THB
	Unit     string   `json:"unit"`
	ImageURL string   `json:"image_url"`
}

type entry struct {
	name     map[manager.Language]string
	unit     map[manager.Language]string
	category Category
	price    float64
	imageURL string
}

var catalogue = []entry{
	{
		name: map[manager.Language]string{
			manager.Thai:    "ปุ๋ยยูเรีย 46-0-0 (ตรากระต่าย)",
			manager.English: "Urea fertilizer 46-0-0 (Rabbit brand)",
		},
		unit:     sack,
		category: Fertilizer,
		price:    890,
		imageURL: "https://global.cpcdn.com/recipes/24d9c490906a5679/680x482cq70.jpg",
	},
	{
		name: map[manager.Language]string{
			manager.Thai:    "ปุ๋ยสูตร 15-15-15 (ตราเรือใบ)",
			manager.English: "Compound fertilizer 15-15-15 (Sailboat brand)",
		},
		unit:     sack,
		category: Fertilizer,
		price:    1150,
		imageURL: "https://promotions.co.th/wp-content/uploads/2022/05/fertilizer-15-15-15-price.jpg",
	},
	{
		name: map[manager.Language]string{
			manager.Thai:    "เมล็ดพันธุ์ข้าวหอมมะลิ 105",
			manager.English: "Hom Mali 105 jasmine rice seed",
		},
		unit:     kilogram,
		category: Seed,
		price:    28,
		imageURL: "https://cdn.shopify.com/s/files/1/0288/2420/7437/products/Jasmine_Rice_Seeds.jpg",
	},
	{
		name: map[manager.Language]string{
			manager.Thai:    "ไกลโฟเซต 48% (ยาฆ่าหญ้า)",
			manager.English: "Glyphosate 48% (herbicide)",
		},
		unit:     gallon,
		category: Chemical,
		price:    680,
		imageURL: "https://sv1.picz.in.th/images/2021/09/24/CPrlqv.jpg",
	},
	{
		name: map[manager.Language]string{
			manager.Thai:    "ทุเรียนหมอนทอง (ราคารับซื้อ)",
			manager.English: "Monthong durian (buying price)",
		},
		unit:     kilogram,
		category: Other,
		price:    145,
		imageURL: "https://www.sgethai.com/wp-content/uploads/2022/05/durian-monthong.jpg",
	},
}

var (
	sack     = map[manager.Language]string{manager.Thai: "กระสอบ", manager.English: "sack"}
	kilogram = map[manager.Language]string{manager.Thai: "กก.", manager.English: "kg"}
	gallon   = map[manager.Language]string{manager.Thai: "แกลลอน", manager.English: "gallon"}
)

// Catalogue returns a fresh copy of the price list; languages without a translation get the Thai text.
func Catalogue(lang manager.Language) []Product {
	products := make([]Product, 0, len(catalogue))
	for _, e := range catalogue {
		products = append(products, Product{
			Name:     localize(e.name, lang),
			Category: e.category,
			Price:    e.price,
			Unit:     localize(e.unit, lang),
			ImageURL: e.imageURL,
		})
	}
	return products
}

func localize(texts map[manager.Language]string, lang manager.Language) string {
	if text, ok := texts[lang]; ok {
		return text
	}
	return texts[manager.Thai]
}
