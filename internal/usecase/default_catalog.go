package usecase

import "github.com/hothat-pawa/go-backend/internal/domain"

// DefaultProducts возвращает встроенный набор товаров, которым каталог
// заполняется при пустом или недоступном хранилище. Цены в пойшах.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           1,
			Name:         "NeoWave Noise Cancelling Headphones",
			Description:  "ইন্ডাস্ট্রি-লিডিং নয়েজ ক্যান্সেলেশন প্রযুক্তির সাথে ইমার্সিভ সাউন্ড।",
			Price:        3599900,
			CategoryName: domain.CategoryElectronics,
			Image:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=500",
			Rating:       4.8,
			ReviewsCount: 1250,
			Tags:         []string{"audio", "wireless", "premium"},
		},
		{
			ID:           2,
			Name:         "Lumina Smart Watch Series 5",
			Description:  "আপনার স্বাস্থ্য ও ফিটনেস ট্র্যাক করুন এবং চলতে চলতে কানেক্টেড থাকুন।",
			Price:        4199900,
			CategoryName: domain.CategoryElectronics,
			Image:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=500",
			Rating:       4.6,
			ReviewsCount: 890,
			Tags:         []string{"wearable", "tech", "health"},
		},
		{
			ID:           3,
			Name:         "Terra Peak Hiking Backpack",
			Description:  "আপনার পরবর্তী অ্যাডভেঞ্চারের জন্য হালকা, টেকসই এবং জলরোধী ব্যাগ।",
			Price:        1200000,
			CategoryName: domain.CategoryOutdoor,
			Image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&q=80&w=500",
			Rating:       4.9,
			ReviewsCount: 430,
			Tags:         []string{"hiking", "travel", "rugged"},
		},
		{
			ID:           4,
			Name:         "Suede Minimalist Sneakers",
			Description:  "ক্লাসিক আরাম এবং আধুনিক স্ট্রিট স্টাইল এখন প্রতি পদক্ষেপে।",
			Price:        1020000,
			CategoryName: domain.CategoryFashion,
			Image:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&q=80&w=500",
			Rating:       4.5,
			ReviewsCount: 2100,
			Tags:         []string{"shoes", "fashion", "comfortable"},
		},
		{
			ID:           5,
			Name:         "Ceramic Artisan Coffee Set",
			Description:  "হস্তশিল্পের ৪টি মগ এবং একটি ম্যাচিং কফি ড্রিপার সেট।",
			Price:        779900,
			CategoryName: domain.CategoryHome,
			Image:        "https://images.unsplash.com/photo-1577968897966-3d4325b36b61?auto=format&fit=crop&q=80&w=500",
			Rating:       4.7,
			ReviewsCount: 156,
			Tags:         []string{"kitchen", "decor", "artisan"},
		},
		{
			ID:           6,
			Name:         "Quantum Mechanical Keyboard",
			Description:  "আল্ট্রা-ফাস্ট ট্যাকটাইল সুইচ সহ RGB ব্যাকলিট মেকানিক্যাল কীবোর্ড।",
			Price:        1900000,
			CategoryName: domain.CategoryElectronics,
			Image:        "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=500",
			Rating:       4.8,
			ReviewsCount: 742,
			Tags:         []string{"gaming", "peripheral", "coding"},
		},
		{
			ID:           7,
			Name:         "Bamboo Eco-Friendly Table Lamp",
			Description:  "পরিবেশবান্ধব বাঁশ দিয়ে তৈরি আধুনিক ইন্টেরিয়র লাইটিং ডিজাইন।",
			Price:        540000,
			CategoryName: domain.CategoryHome,
			Image:        "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?auto=format&fit=crop&q=80&w=500",
			Rating:       4.4,
			ReviewsCount: 88,
			Tags:         []string{"lighting", "sustainable", "home"},
		},
		{
			ID:           8,
			Name:         "AeroCore Fitness Mat",
			Description:  "সর্বোচ্চ সাপোর্ট প্রদানের জন্য অতিরিক্ত পুরু এবং স্লিপ-প্রুফ যোগ ম্যাট।",
			Price:        479900,
			CategoryName: domain.CategoryOutdoor,
			Image:        "https://images.unsplash.com/photo-1592432678016-e910b452f9a2?auto=format&fit=crop&q=80&w=500",
			Rating:       4.6,
			ReviewsCount: 320,
			Tags:         []string{"fitness", "health", "yoga"},
		},
		{
			ID:           9,
			Name:         "Zen Floating Shelf Decor",
			Description:  "ট্রপিক্যাল সবুজের ছোঁয়া ও হাতে তৈরি ফুলের সাথে একটি মার্জিত ভাসমান শেলফ ডেকোর।",
			Price:        1200000,
			CategoryName: domain.CategoryHome,
			Image:        "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?auto=format&fit=crop&q=80&w=500",
			Rating:       5.0,
			ReviewsCount: 1,
			Tags:         []string{"decor", "home", "zen", "artisan"},
		},
	}
}
