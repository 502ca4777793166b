// Package seed holds the fixture document written on cold start. The
// content mirrors what the school site launched with: showcase
// activities, a few published news items and the public gallery, with
// every other collection empty.
package seed

import (
	"strconv"
	"time"

	"github.com/almukhtar-edu/sitestore/internal/models"
)

func at(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 10, 0, 0, 0, time.UTC)
}

// Document builds a fresh fixture document. Each call returns an
// independent value so callers can mutate the result freely.
func Document() models.Document {
	return models.Document{
		Enrollments:   []models.Enrollment{},
		News:          newsFixtures(),
		Events:        []models.Event{},
		Activities:    activityFixtures(),
		GalleryImages: galleryFixtures(),
		Messages:      []models.Message{},
		Notifications: []models.Notification{},
		Visits:        models.VisitStats{},
		Settings:      settingsFixtures(),
	}
}

func activityFixtures() []models.Activity {
	return []models.Activity{
		{
			ID:            "1",
			TitleAr:       "معرض العلوم",
			TitleEn:       "Science Fair",
			DescriptionAr: "عرض مبتكر لمشاريع العلوم من طلابنا الموهوبين",
			DescriptionEn: "Innovative science projects from our talented students",
			Category:      "Academic",
			Image:         "https://i.postimg.cc/cLvc8yd8/biology.png",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.January, 15),
		},
		{
			ID:            "2",
			TitleAr:       "اليوم الرياضي",
			TitleEn:       "Sports Day",
			DescriptionAr: "فعاليات رياضية متنوعة لجميع المراحل",
			DescriptionEn: "Diverse sports activities for all grade levels",
			Category:      "Sports",
			Image:         "https://i.postimg.cc/CL94khmp/sports.png",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.January, 20),
		},
		{
			ID:            "3",
			TitleAr:       "المهرجان الثقافي",
			TitleEn:       "Cultural Festival",
			DescriptionAr: "احتفال بالتراث والثقافة العربية",
			DescriptionEn: "Celebration of Arab heritage and culture",
			Category:      "Cultural",
			Image:         "https://i.postimg.cc/nnLxwddj/books.png",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.January, 25),
		},
		{
			ID:            "4",
			TitleAr:       "نموذج الأمم المتحدة",
			TitleEn:       "Model UN",
			DescriptionAr: "تجربة قيادة دبلوماسية للطلاب",
			DescriptionEn: "Diplomatic leadership experience for students",
			Category:      "Leadership",
			Image:         "https://i.postimg.cc/8CJT7bKb/mukhtarday.jpg",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.February, 1),
		},
		{
			ID:            "5",
			TitleAr:       "عرض الموسيقى والفنون",
			TitleEn:       "Music & Arts Showcase",
			DescriptionAr: "عرض مواهب طلابنا في الموسيقى والفنون",
			DescriptionEn: "Showcasing student talents in music and arts",
			Category:      "Arts",
			Image:         "https://i.postimg.cc/1zSFWjgP/art.png",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.February, 5),
		},
		{
			ID:            "6",
			TitleAr:       "أولمبياد الرياضيات",
			TitleEn:       "Math Olympiad",
			DescriptionAr: "مسابقة رياضيات للطلاب المتفوقين",
			DescriptionEn: "Mathematics competition for gifted students",
			Category:      "Academic",
			Image:         "https://i.postimg.cc/sgjmc653/chess.jpg",
			Status:        models.VisibilityActive,
			CreatedAt:     at(time.February, 10),
		},
	}
}

func newsFixtures() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:        "1",
			TitleAr:   "افتتاح مختبر علوم جديد",
			TitleEn:   "New Science Lab Opening",
			ContentAr: "تم افتتاح مختبر علوم حديث مجهز بأحدث التقنيات لطلابنا",
			ContentEn: "Opened a modern science lab equipped with latest technologies for our students",
			Category:  "announcements",
			Image:     "https://i.postimg.cc/0QWcMpz9/Arabic.png",
			Status:    models.StatusPublished,
			CreatedAt: at(time.January, 10),
		},
		{
			ID:        "2",
			TitleAr:   "فوز المدرسة في مسابقة المناظرة",
			TitleEn:   "School Wins Debate Competition",
			ContentAr: "فاز طلابنا بالمركز الأول في مسابقة المناظرة على مستوى المحافظة",
			ContentEn: "Our students won first place in the governorate-level debate competition",
			Category:  "achievements",
			Image:     "https://i.postimg.cc/8CJT7bKb/mukhtarday.jpg",
			Status:    models.StatusPublished,
			CreatedAt: at(time.January, 12),
		},
		{
			ID:        "3",
			TitleAr:   "توسعة مكتبة المدرسة",
			TitleEn:   "School Library Expansion",
			ContentAr: "تم توسعة مكتبة المدرسة بإضافة 500 كتاب جديد",
			ContentEn: "School library expanded with 500 new books added",
			Category:  "updates",
			Image:     "https://i.postimg.cc/vBZdwtRy/lib.jpg",
			Status:    models.StatusPublished,
			CreatedAt: at(time.January, 18),
		},
	}
}

func galleryFixtures() []models.GalleryImage {
	entries := []struct {
		titleAr  string
		titleEn  string
		image    string
		category string
	}{
		{"فصل رياض الأطفال", "Kindergarten Classroom", "https://i.postimg.cc/FRxPVM1g/pclab.jpg", "classrooms"},
		{"نشاط رياضي", "Sports Activity", "https://i.postimg.cc/CL94khmp/sports.png", "sports"},
		{"يوم المختار", "Mukhtar Day", "https://i.postimg.cc/8CJT7bKb/mukhtarday.jpg", "events"},
		{"حفل التخرج", "Graduation Ceremony", "https://i.postimg.cc/0QWcMpz9/Arabic.png", "events"},
		{"ورشة فنية", "Art Workshop", "https://i.postimg.cc/1zSFWjgP/art.png", "activities"},
		{"مكتبة المدرسة", "School Library", "https://i.postimg.cc/vBZdwtRy/lib.jpg", "facilities"},
		{"دراسة جماعية", "Group Study", "https://i.postimg.cc/05TnFGJJ/students.jpg", "students"},
		{"مختبر الكيمياء", "Chemistry Lab", "https://i.postimg.cc/0QWcMpz9/Arabic.png", "facilities"},
		{"معرض العلوم", "Science Fair", "https://i.postimg.cc/cLvc8yd8/biology.png", "events"},
		{"مختبر الحاسوب", "Computer Lab", "https://i.postimg.cc/FRxPVM1g/pclab.jpg", "facilities"},
		{"تكامل التكنولوجيا", "Technology Integration", "https://i.postimg.cc/386F0j1b/tech.jpg", "classrooms"},
		{"حفل موسيقي", "Music Concert", "https://i.postimg.cc/cCgsnBLW/image.png", "activities"},
	}

	images := make([]models.GalleryImage, 0, len(entries))
	for i, entry := range entries {
		images = append(images, models.GalleryImage{
			ID:        strconv.Itoa(i + 1),
			TitleAr:   entry.titleAr,
			TitleEn:   entry.titleEn,
			Image:     entry.image,
			Category:  entry.category,
			Status:    models.VisibilityActive,
			CreatedAt: at(time.January, i+1),
		})
	}
	return images
}

func settingsFixtures() models.Settings {
	return models.Settings{
		"schoolName":             "مدرسة المختار الخاصة",
		"schoolDescription":      "مدرسة رائدة في التعليم الحديث تقدم مناهج متطورة وبيئة تعليمية متميزة",
		"email":                  "info@mukhtarschool.edu.sy",
		"phone":                  "011-1234567",
		"address":                "حي النرجس، الرياض",
		"website":                "https://mukhtarschool.com",
		"logoUrl":                "https://i.postimg.cc/bJJWZVVC/logoM.png",
		"primaryColor":           "#2563eb",
		"secondaryColor":         "#f59e0b",
		"enableOnlineEnrollment": true,
		"enableNotifications":    true,
		"enableNewsletter":       false,
		"facebookUrl":            "https://facebook.com/mukhtarschool",
		"instagramUrl":           "https://instagram.com/mukhtarschool",
		"twitterUrl":             "https://twitter.com/mukhtarschool",
	}
}

