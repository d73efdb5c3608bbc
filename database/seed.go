package database

import (
	"log"
	"time"

	"mindhaven/models"

	"gorm.io/gorm"
)

// SeedKnowledgeBase inserts the starter articles when the knowledge table
// is empty, so a fresh install has searchable content immediately.
func SeedKnowledgeBase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.KnowledgeContent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("INFO: [Database] Knowledge base already has %d documents, skipping seed.", count)
		return nil
	}

	now := time.Now()
	reviewer := "system"
	seed := []models.KnowledgeContent{
		{
			Title:   "Memahami Kecemasan: Penyebab dan Strategi Penanganan",
			Summary: "Panduan komprehensif untuk memahami gangguan kecemasan dan mekanisme koping berbasis bukti.",
			Content: "Kecemasan adalah respons alami terhadap stres, namun ketika menjadi berlebihan, dapat mengganggu kehidupan sehari-hari.\n\n" +
				"Penyebab umum: faktor genetik, ketidakseimbangan kimia otak, peristiwa traumatis, stres kronis.\n\n" +
				"Strategi penanganan berbasis bukti:\n" +
				"1. Pernapasan dalam: praktikkan teknik 4-7-8.\n" +
				"2. Relaksasi otot progresif.\n" +
				"3. Restrukturisasi kognitif: tantang pola pikir negatif.\n" +
				"4. Olahraga teratur.\n" +
				"5. Meditasi mindfulness.\n\n" +
				"Jika kecemasan secara signifikan memengaruhi hidup Anda, mencari bantuan profesional adalah tanda kekuatan, bukan kelemahan.",
			Type:       models.ContentTypeArticle,
			Category:   "anxiety",
			AuthorID:   "contributor-1",
			AuthorName: "Dr. Sarah Wijaya",
			Status:     models.StatusApproved,
			CreatedAt:  now.Add(-7 * 24 * time.Hour),
			ReviewedAt: timePtr(now.Add(-6 * 24 * time.Hour)),
			ReviewedBy: &reviewer,
		},
		{
			Title:   "5 Praktik Mindfulness Harian untuk Kesehatan Mental yang Lebih Baik",
			Summary: "Teknik mindfulness sederhana yang dapat Anda masukkan ke dalam rutinitas harian.",
			Content: "Mindfulness membantu kita tetap membumi di saat ini. Lima praktik yang bisa dicoba:\n\n" +
				"1. Rasa syukur pagi (2 menit).\n" +
				"2. Makan dengan penuh kesadaran (10 menit).\n" +
				"3. Meditasi berjalan (10 menit).\n" +
				"4. Body scan (5 menit).\n" +
				"5. Refleksi malam (5 menit).\n\n" +
				"Mulailah dengan satu praktik dan tambahkan lebih banyak secara bertahap.",
			Type:       models.ContentTypeArticle,
			Category:   "mindfulness",
			AuthorID:   "contributor-1",
			AuthorName: "Dr. Sarah Wijaya",
			Status:     models.StatusApproved,
			CreatedAt:  now.Add(-5 * 24 * time.Hour),
			ReviewedAt: timePtr(now.Add(-4 * 24 * time.Hour)),
			ReviewedBy: &reviewer,
		},
		{
			Title:   "Mengenali Tanda-tanda Depresi: Kapan Harus Mencari Bantuan",
			Summary: "Pelajari cara mengidentifikasi gejala umum depresi dan pahami kapan bantuan profesional diperlukan.",
			Content: "Depresi lebih dari sekadar merasa sedih. Ini adalah kondisi kesehatan mental serius yang memengaruhi cara Anda merasa, berpikir, dan menangani aktivitas sehari-hari.\n\n" +
				"Gejala umum: suasana hati sedih atau kosong yang terus-menerus, kehilangan minat, perubahan nafsu makan, gangguan tidur, kelelahan, kesulitan berkonsentrasi.\n\n" +
				"Cari bantuan bila gejala berlangsung lebih dari 2 minggu atau fungsi sehari-hari terganggu. Depresi dapat diobati; meminta bantuan adalah langkah pertama menuju pemulihan.\n\n" +
				"Jika Anda dalam krisis, segera hubungi profesional kesehatan mental atau layanan darurat.",
			Type:       models.ContentTypeArticle,
			Category:   "depression",
			AuthorID:   "contributor-1",
			AuthorName: "Dr. Sarah Wijaya",
			Status:     models.StatusApproved,
			CreatedAt:  now.Add(-3 * 24 * time.Hour),
			ReviewedAt: timePtr(now.Add(-2 * 24 * time.Hour)),
			ReviewedBy: &reviewer,
		},
	}

	if err := db.Create(&seed).Error; err != nil {
		return err
	}
	log.Printf("INFO: [Database] Seeded knowledge base with %d starter documents.", len(seed))
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
