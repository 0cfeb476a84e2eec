package store

const (
	userColumns = `user_id, username, email, password, avatar, created_at, updated_at`

	createUser = `INSERT INTO users (user_id, username, email, password, avatar)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByUsernameOrEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 OR email = $2;`

	updateUserPassword = `UPDATE users
    SET password = $2, updated_at = NOW()
    WHERE user_id = $1;`

	updateUserAvatar = `UPDATE users
    SET avatar = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`
)
