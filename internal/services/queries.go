package services

const (
	// queryApplicationsPerJob counts applications for every job. The outer join
	// keeps jobs without applications (count 0). Grouping by job_id yields one
	// row per job even when titles repeat. The key is read as text since its
	// type (serial, uuid, text) varies by schema. No ORDER BY: order is unspecified.
	queryApplicationsPerJob = `
		SELECT j.job_id::text, j.title, COUNT(a.application_id) AS total_applications
		FROM jobs j
		LEFT JOIN applications a ON j.job_id = a.job_id
		GROUP BY j.job_id, j.title
	`
)
