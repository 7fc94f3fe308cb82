package store

import (
	"time"

	"github.com/healthnews/curator/internal/models"
)

// seedArticles is the bundled demo set shown when no feed URL is supplied.
func seedArticles() []models.Article {
	return []models.Article{
		{
			ID:    "1",
			Title: "Revolutionary Gene Therapy Shows Promise in Treating Rare Blood Disorders",
			Content: "Scientists at Johns Hopkins University have developed a groundbreaking gene therapy that successfully treats patients with sickle cell disease and beta-thalassemia. The treatment, called CTX001, uses CRISPR gene-editing technology to modify patients' own blood stem cells. " +
				"In clinical trials involving 75 patients, 95% showed significant improvement within six months. The therapy edits the BCL11A gene, which controls production of fetal hemoglobin, a form that can compensate for defective adult hemoglobin. " +
				"The treatment involves extracting the patient's bone marrow stem cells, editing them in the laboratory, and reintroducing them. While promising, it costs approximately $2.1 million per patient and requires specialized facilities.",
			Source:      "Johns Hopkins Medicine",
			PublishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryMedicalBreakthroughs,
			URL:         "https://example.com/gene-therapy",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "2",
			Title: "New Study Links Gut Microbiome to Depression and Anxiety Disorders",
			Content: "A comprehensive study published in Nature Medicine reveals strong connections between gut bacteria and mental health conditions. Researchers analyzed gut microbiome samples from 10,000 participants across 12 countries. " +
				"People with depression and anxiety showed significantly different bacterial compositions, with reduced levels of Bifidobacterium and Lactobacillus species, which produce mood-regulating neurotransmitters. " +
				"The team developed a microbiome score that predicted depression in 78% of cases, and participants taking targeted probiotics showed 40% improvement in anxiety symptoms over 12 weeks.",
			Source:      "Nature Medicine",
			PublishedAt: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryMentalHealth,
			URL:         "https://example.com/gut-brain",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "3",
			Title: "AI-Powered Drug Discovery Cuts Cancer Treatment Development Time by 60%",
			Content: "Pharmaceutical company Nexus Therapeutics has used artificial intelligence to develop a new cancer immunotherapy in just 18 months, compared to the typical 4-5 years. The AI system analyzed over 100 million molecular compounds to identify promising candidates. " +
				"The treatment targets PD-L1 proteins on cancer cells, helping the immune system recognize and destroy tumors. In Phase II trials, 68% of advanced lung cancer patients experienced tumor shrinkage. " +
				"The FDA has granted breakthrough therapy designation, fast-tracking the approval process.",
			Source:      "Nexus Therapeutics",
			PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryHealthcareTechnology,
			URL:         "https://example.com/ai-drug-discovery",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "4",
			Title: "Mediterranean Diet Reduces Risk of Alzheimer's Disease by 53%, Long-term Study Finds",
			Content: "A 20-year longitudinal study tracking 15,000 participants reveals that following a Mediterranean diet can significantly reduce the risk of developing Alzheimer's disease. " +
				"Participants who closely followed the diet, rich in olive oil, fish, nuts, fruits, and vegetables, had a 53% lower risk compared to those with poor dietary habits. Protective effects were most pronounced in people with genetic predisposition. " +
				"Participants on the diet also had larger brain volumes in areas crucial for memory, and blood tests showed reduced levels of beta-amyloid proteins.",
			Source:      "JAMA Neurology",
			PublishedAt: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryNutritionResearch,
			URL:         "https://example.com/mediterranean-alzheimers",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "5",
			Title: "Breakthrough Immunotherapy Offers Hope for Type 1 Diabetes Patients",
			Content: "Researchers at Stanford University have developed an immunotherapy that preserves insulin-producing cells in newly diagnosed Type 1 diabetes patients. The treatment uses engineered immune cells to prevent the autoimmune destruction of pancreatic beta cells. " +
				"In trials, patients receiving the therapy within three months of diagnosis retained significantly more natural insulin production after two years, reducing their dependence on injections and improving long-term outcomes.",
			Source:      "Stanford Medicine",
			PublishedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryTreatmentAdvances,
			URL:         "https://example.com/diabetes-immunotherapy",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "6",
			Title: "Wearable Devices Detect Heart Attacks 2 Hours Before Symptoms Appear",
			Content: "A new generation of wearable sensors can detect the early biochemical signatures of a heart attack up to two hours before symptoms appear, according to research from MIT. The devices monitor subtle changes in heart rhythm, skin conductivity, and blood oxygen. " +
				"In a study of 5,000 high-risk patients, the system identified impending cardiac events with 89% accuracy, giving patients critical time to seek emergency care.",
			Source:      "MIT Technology Review",
			PublishedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryHealthcareTechnology,
			URL:         "https://example.com/wearable-heart",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "7",
			Title: "Revolutionary Sleep Study Links Quality Rest to Immune System Strength",
			Content: "A multi-year study from the UC Sleep Research Center demonstrates that consistent, high-quality sleep measurably strengthens immune response. Participants who averaged seven to eight hours of uninterrupted sleep produced significantly more infection-fighting T cells. " +
				"Poor sleepers showed elevated inflammatory markers and were three times more likely to catch respiratory infections during the study period. Researchers recommend treating sleep as a pillar of preventive health alongside diet and exercise.",
			Source:      "UC Sleep Research Center",
			PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryPreventionTips,
			URL:         "https://example.com/sleep-immunity",
			ImageURL:    "/api/placeholder/400/250",
		},
		{
			ID:    "8",
			Title: "Personalized Cancer Vaccines Show 90% Success Rate in Preventing Recurrence",
			Content: "Memorial Sloan Kettering researchers report that personalized mRNA cancer vaccines, tailored to the mutations in each patient's tumor, prevented recurrence in 90% of melanoma patients over a three-year follow-up. " +
				"The vaccines train the immune system to recognize tumor-specific antigens, attacking any returning cancer cells before they can establish new tumors. Larger trials across additional cancer types are now underway.",
			Source:      "Memorial Sloan Kettering",
			PublishedAt: time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryMedicalBreakthroughs,
			URL:         "https://example.com/cancer-vaccines",
			ImageURL:    "/api/placeholder/400/250",
		},
	}
}
