package mysql

const insertResourceSQL = `
INSERT INTO resources
  (id, industry, type, attrs)
VALUES
  (?, ?, ?, ?)
`

const updateResourceSQL = `
UPDATE resources
SET attrs      = ?,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND industry = ? AND type = ?
`

const deleteResourceSQL = `
DELETE FROM resources
WHERE id = ? AND industry = ?
`

const listResourcesSQL = `
SELECT id, type, attrs
FROM resources
WHERE industry = ?
ORDER BY created_at, id
`
