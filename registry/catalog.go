package registry

import "fmt"

// Default returns the built-in PrimusGFS readiness catalog: the checklist
// modules tracked by the certification dashboard, grouped into the six rollup
// categories. The catalog is static; operations that need a different
// checklist load one through the manifest package instead.
func Default() *Registry {
	r, err := New(defaultModules()...)
	if err != nil {
		// The built-in catalog is compile-time data; a construction failure
		// is a programming error, not a data problem.
		panic(err)
	}
	return r
}

func defaultModules() []Module {
	return []Module{
		{
			Key:       "food_safety_plan",
			Label:     "Food Safety Plan",
			Category:  CategoryManagement,
			NavTarget: "primus/food-safety-plan",
			Detector: func(data Blob) string {
				if approved, ok := data.Int("plan", "approved_sections"); ok {
					if total, ok := data.Int("plan", "total_sections"); ok && approved < total {
						return fmt.Sprintf("%d of %d plan sections approved", approved, total)
					}
				}
				return ""
			},
		},
		{
			Key:       "document_control",
			Label:     "Document Control",
			Category:  CategoryManagement,
			NavTarget: "primus/documents",
			Detector: func(data Blob) string {
				if n, ok := data.Int("documents", "unsigned"); ok && n > 0 {
					return fmt.Sprintf("%d %s awaiting signature", n, plural(n, "policy", "policies"))
				}
				return ""
			},
		},
		{
			Key:       "internal_audits",
			Label:     "Internal Audits",
			Category:  CategoryManagement,
			NavTarget: "primus/audits",
			Detector: func(data Blob) string {
				if done, ok := data.Int("audits", "quarters_completed"); ok && done < 4 {
					return fmt.Sprintf("%d of 4 quarterly audits completed", done)
				}
				return ""
			},
		},
		{
			Key:       "management_review",
			Label:     "Management Review",
			Category:  CategoryManagement,
			NavTarget: "primus/management-review",
			Detector: func(data Blob) string {
				if n, ok := data.Int("reviews", "overdue"); ok && n > 0 {
					return fmt.Sprintf("%d overdue management %s", n, plural(n, "review", "reviews"))
				}
				return ""
			},
		},
		{
			Key:       "training_matrix",
			Label:     "Training Matrix",
			Category:  CategoryTraining,
			NavTarget: "training/matrix",
			Detector: func(data Blob) string {
				if n, ok := data.Int("training", "workers_untrained"); ok && n > 0 {
					return fmt.Sprintf("%d %s missing required training", n, plural(n, "worker", "workers"))
				}
				return ""
			},
		},
		{
			Key:       "hygiene_training",
			Label:     "Hygiene & Sanitation Training",
			Category:  CategoryTraining,
			NavTarget: "training/hygiene",
			Detector: func(data Blob) string {
				if n, ok := data.Int("training", "hygiene_refreshers_due"); ok && n > 0 {
					return fmt.Sprintf("%d hygiene %s due", n, plural(n, "refresher", "refreshers"))
				}
				return ""
			},
		},
		{
			Key:       "preharvest_inspection",
			Label:     "Pre-Harvest Inspections",
			Category:  CategoryFieldOps,
			NavTarget: "fields/inspections",
			Detector: func(data Blob) string {
				if n, ok := data.Int("fields", "uninspected"); ok && n > 0 {
					return fmt.Sprintf("%d %s without a pre-harvest inspection", n, plural(n, "field", "fields"))
				}
				return ""
			},
		},
		{
			Key:       "harvest_sanitation",
			Label:     "Harvest Crew Sanitation",
			Category:  CategoryFieldOps,
			NavTarget: "harvest/sanitation",
			Detector: func(data Blob) string {
				if n, ok := data.Int("harvest", "sanitation_logs_missing"); ok && n > 0 {
					return fmt.Sprintf("%d sanitation %s missing", n, plural(n, "log", "logs"))
				}
				return ""
			},
		},
		{
			Key:       "supplier_approval",
			Label:     "Supplier Approval Program",
			Category:  CategorySuppliers,
			NavTarget: "suppliers/approval",
			Detector: func(data Blob) string {
				if n, ok := data.Int("suppliers", "unapproved"); ok && n > 0 {
					return fmt.Sprintf("%d %s pending approval", n, plural(n, "supplier", "suppliers"))
				}
				return ""
			},
		},
		{
			Key:       "chemical_inventory",
			Label:     "Chemical Inventory",
			Category:  CategorySuppliers,
			NavTarget: "chemicals/inventory",
			Detector: func(data Blob) string {
				if n, ok := data.Int("chemicals", "unlabeled"); ok && n > 0 {
					return fmt.Sprintf("%d unlabeled chemical %s", n, plural(n, "container", "containers"))
				}
				return ""
			},
		},
		{
			Key:       "water_testing",
			Label:     "Agricultural Water Testing",
			Category:  CategoryMonitoring,
			NavTarget: "water/testing",
			Detector: func(data Blob) string {
				if n, ok := data.Int("water", "sources_overdue"); ok && n > 0 {
					return fmt.Sprintf("%d water %s overdue for testing", n, plural(n, "source", "sources"))
				}
				return ""
			},
		},
		{
			Key:       "environmental_monitoring",
			Label:     "Environmental Monitoring",
			Category:  CategoryMonitoring,
			NavTarget: "monitoring/environmental",
			Detector: func(data Blob) string {
				if n, ok := data.Int("monitoring", "swabs_missed"); ok && n > 0 {
					return fmt.Sprintf("%d scheduled %s missed", n, plural(n, "swab", "swabs"))
				}
				return ""
			},
		},
		{
			Key:       "incident_log",
			Label:     "Incident & Recall Log",
			Category:  CategorySafety,
			NavTarget: "safety/incidents",
			Detector: func(data Blob) string {
				if n, ok := data.Int("incidents", "open"); ok && n > 0 {
					return fmt.Sprintf("%d open %s", n, plural(n, "incident", "incidents"))
				}
				return ""
			},
		},
		{
			Key:       "worker_protection",
			Label:     "Worker Protection Standard",
			Category:  CategorySafety,
			NavTarget: "safety/wps",
			Detector: func(data Blob) string {
				if n, ok := data.Int("wps", "postings_expired"); ok && n > 0 {
					return fmt.Sprintf("%d expired WPS %s", n, plural(n, "posting", "postings"))
				}
				return ""
			},
		},
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
