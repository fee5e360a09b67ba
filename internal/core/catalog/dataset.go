package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/shopswift/storefront/internal/core/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// dataset is the canonical product list. Definition order is catalog
// order, which also serves as the "newest" sort proxy.
var dataset = []domain.Product{
	{
		ID:              1,
		Name:            "Premium Wireless Headphones",
		Description:     "Experience crystal clear sound with these premium wireless headphones. Featuring noise cancellation technology, comfortable ear cushions, and long battery life for extended listening sessions.",
		Price:           price("199.99"),
		DiscountedPrice: price("179.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
			"https://images.unsplash.com/photo-1572536147248-ac59a8abfa4b",
			"https://images.unsplash.com/photo-1590658268037-6bf12165a8df",
		},
		Category:   domain.CategoryElectronics,
		Rating:     4.8,
		Reviews:    128,
		InStock:    true,
		Featured:   true,
		BestSeller: true,
		Specs: map[string]string{
			"Battery Life": "30 hours",
			"Connectivity": "Bluetooth 5.0",
			"Weight":       "250g",
			"Warranty":     "2 years",
		},
	},
	{
		ID:          2,
		Name:        "Smart Fitness Watch",
		Description: "Track your fitness goals with this advanced smart watch. Features heart rate monitoring, sleep tracking, and workout analytics. Water-resistant and compatible with iOS and Android devices.",
		Price:       price("149.95"),
		Images: []string{
			"https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
			"https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.6,
		Reviews:  95,
		InStock:  true,
		New:      true,
	},
	{
		ID:              3,
		Name:            "Casual Cotton T-Shirt",
		Description:     "A comfortable, everyday cotton t-shirt made from 100% organic materials. Features a classic fit and comes in multiple colors for versatile styling options.",
		Price:           price("24.99"),
		DiscountedPrice: price("19.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1576566588028-4147f3842f27",
			"https://images.unsplash.com/photo-1618354691373-d851c5c3a990",
		},
		Category: domain.CategoryClothing,
		Rating:   4.3,
		Reviews:  210,
		InStock:  true,
		Specs: map[string]string{
			"Material": "100% Organic Cotton",
			"Care":     "Machine wash cold",
			"Fit":      "Regular fit",
		},
	},
	{
		ID:          4,
		Name:        "Professional Digital Camera",
		Description: "Capture stunning photos and videos with this professional-grade digital camera. Equipped with a high-resolution sensor, 4K video capabilities, and intuitive controls.",
		Price:       price("1299.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			"https://images.unsplash.com/photo-1502920917128-1aa500764cbd",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.9,
		Reviews:  64,
		InStock:  true,
		Featured: true,
		Specs: map[string]string{
			"Resolution": "24.2MP",
			"Video":      "4K/60fps",
			"Storage":    "Dual SD card slots",
			"Battery":    "1500 shots per charge",
		},
	},
	{
		ID:          5,
		Name:        "Leather Crossbody Bag",
		Description: "A stylish and functional leather crossbody bag perfect for everyday use. Features multiple compartments, adjustable strap, and premium materials that will last for years.",
		Price:       price("89.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1594223274512-ad4803739b7c",
			"https://images.unsplash.com/photo-1590874103328-eac38a683ce7",
		},
		Category:   domain.CategoryAccessories,
		Rating:     4.5,
		Reviews:    87,
		InStock:    true,
		BestSeller: true,
	},
	{
		ID:              6,
		Name:            "Scented Soy Candle",
		Description:     "Create a relaxing atmosphere with this hand-poured soy candle. Features a blend of essential oils for a long-lasting, clean-burning aroma that transforms any space.",
		Price:           price("29.99"),
		DiscountedPrice: price("24.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1602523961854-d8f0e591db7e",
			"https://images.unsplash.com/photo-1603006905393-c3bbbced0f27",
		},
		Category: domain.CategoryHome,
		Rating:   4.7,
		Reviews:  153,
		InStock:  true,
	},
	{
		ID:          7,
		Name:        "Skincare Gift Set",
		Description: "A comprehensive skincare routine in one elegant package. Includes cleanser, toner, serum, and moisturizer made from natural ingredients suitable for all skin types.",
		Price:       price("79.95"),
		Images: []string{
			"https://images.unsplash.com/photo-1570194065650-d99fb4632c3e",
			"https://images.unsplash.com/photo-1531895861208-8504b98fe814",
		},
		Category: domain.CategoryBeauty,
		Rating:   4.4,
		Reviews:  76,
		InStock:  true,
		New:      true,
	},
	{
		ID:              8,
		Name:            "Portable Bluetooth Speaker",
		Description:     "Take your music anywhere with this compact, waterproof Bluetooth speaker. Delivers impressive sound quality, has 12 hours of battery life, and includes a built-in microphone for calls.",
		Price:           price("59.99"),
		DiscountedPrice: price("49.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1",
			"https://images.unsplash.com/photo-1564424224827-cd24b8915874",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.2,
		Reviews:  118,
		InStock:  true,
		Specs: map[string]string{
			"Battery Life": "12 hours",
			"Connectivity": "Bluetooth 5.0",
			"Waterproof":   "IPX7 Rating",
			"Weight":       "340g",
		},
	},
	{
		ID:          9,
		Name:        "Yoga Mat",
		Description: "A non-slip, eco-friendly yoga mat perfect for all types of yoga and fitness activities. Provides optimal cushioning and support for your practice.",
		Price:       price("39.95"),
		Images: []string{
			"https://images.unsplash.com/photo-1592432678016-e910b452f9a2",
			"https://images.unsplash.com/photo-1562088287-bde35a1ea917",
		},
		Category: domain.CategorySports,
		Rating:   4.6,
		Reviews:  92,
		InStock:  true,
	},
	{
		ID:          10,
		Name:        "Wooden Building Blocks",
		Description: "Educational wooden building blocks for children. Made from sustainable wood and safe, water-based paints. Helps develop motor skills and creativity.",
		Price:       price("34.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1509224863479-ab583ee78692",
			"https://images.unsplash.com/photo-1569399078436-da10fbd60f12",
		},
		Category: domain.CategoryToys,
		Rating:   4.8,
		Reviews:  41,
		InStock:  true,
		Featured: true,
	},
	{
		ID:          11,
		Name:        "Designer Wall Clock",
		Description: "Add a touch of elegance to any room with this modern designer wall clock. Features silent movement and a unique design that serves as both timekeeper and wall art.",
		Price:       price("49.95"),
		Images: []string{
			"https://images.unsplash.com/photo-1507045042292-0d7d1add101a",
			"https://images.unsplash.com/photo-1533090161767-e6ffed986c88",
		},
		Category: domain.CategoryHome,
		Rating:   4.5,
		Reviews:  67,
	},
	{
		ID:          12,
		Name:        "Premium Coffee Maker",
		Description: "Brew barista-quality coffee at home with this premium coffee maker. Features customizable brew strength, programmable timer, and thermal carafe to keep your coffee hot for hours.",
		Price:       price("129.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6",
			"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
		},
		Category: domain.CategoryHome,
		Rating:   4.7,
		Reviews:  109,
		InStock:  true,
		Specs: map[string]string{
			"Capacity": "12 cups",
			"Programs": "5 brew settings",
			"Features": "Auto shut-off, Timer",
			"Warranty": "3 years",
		},
	},
	{
		ID:              13,
		Name:            "Ultra HD Smart TV",
		Description:     "Experience cinema-quality entertainment at home with this 55-inch Ultra HD Smart TV. Features vivid colors, sharp contrast, and integrated streaming apps.",
		Price:           price("799.99"),
		DiscountedPrice: price("699.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1593784991095-a205069470b6",
			"https://images.unsplash.com/photo-1577979749830-f1d742b96791",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.7,
		Reviews:  83,
		InStock:  true,
		Featured: true,
		Specs: map[string]string{
			"Screen Size":  "55 inches",
			"Resolution":   "4K Ultra HD",
			"Connectivity": "WiFi, Bluetooth, HDMI",
			"Features":     "Voice control, HDR",
		},
	},
	{
		ID:          14,
		Name:        "Wireless Gaming Mouse",
		Description: "Enhance your gaming experience with this high-precision wireless gaming mouse. Features customizable buttons, adjustable DPI, and comfortable ergonomics.",
		Price:       price("69.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7",
			"https://images.unsplash.com/photo-1527814050087-3793815479db",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.5,
		Reviews:  120,
		InStock:  true,
		New:      true,
	},
	{
		ID:          15,
		Name:        "Mechanical Keyboard",
		Description: "Type with precision and satisfaction on this mechanical keyboard with customizable RGB lighting and durable key switches for both gaming and productivity.",
		Price:       price("129.95"),
		Images: []string{
			"https://images.unsplash.com/photo-1618384887929-16ec33fab9ef",
			"https://images.unsplash.com/photo-1595044778792-33c0241b4ab8",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.6,
		Reviews:  74,
	},
	{
		ID:          16,
		Name:        "Wireless Charging Pad",
		Description: "Eliminate cable clutter with this sleek wireless charging pad compatible with all Qi-enabled devices. Features fast charging and a non-slip surface.",
		Price:       price("29.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1622039738125-e0ff9956f13a",
			"https://images.unsplash.com/photo-1618751295548-8b49fec3b816",
		},
		Category: domain.CategoryElectronics,
		Rating:   4.4,
		Reviews:  56,
		InStock:  true,
	},
	{
		ID:              17,
		Name:            "Slim Fit Jeans",
		Description:     "Modern slim fit jeans made from premium denim with just the right amount of stretch for comfort and style.",
		Price:           price("59.99"),
		DiscountedPrice: price("49.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1542272604-787c3835535d",
			"https://images.unsplash.com/photo-1541099649105-f69ad21f3246",
		},
		Category: domain.CategoryClothing,
		Rating:   4.4,
		Reviews:  156,
		InStock:  true,
	},
}
