package store

const (
	createAccount = `INSERT INTO accounts (email, password_hash)
    VALUES ($1, $2)
    RETURNING account_id, email, password_hash, created_at, last_login_at;`

	findAccountByEmail = `SELECT account_id, email, password_hash, created_at, last_login_at
    FROM accounts
    WHERE email = $1;`

	touchAccountLastLogin = `UPDATE accounts
    SET last_login_at = NOW()
    WHERE account_id = $1;`

	createSession = `INSERT INTO progress_sessions (token, account_id)
    VALUES ($1, $2)
    RETURNING session_id, token, account_id, created_at, last_active_at;`

	findSessionByToken = `SELECT session_id, token, account_id, created_at, last_active_at
    FROM progress_sessions
    WHERE token = $1;`

	linkSessionToAccount = `UPDATE progress_sessions
    SET account_id = $2
    WHERE token = $1 AND account_id IS NULL;`

	touchSession = `UPDATE progress_sessions
    SET last_active_at = NOW()
    WHERE token = $1;`

	sessionTokensForAccount = `SELECT token
    FROM progress_sessions
    WHERE account_id = $1;`

	pruneIdleAnonymousSessions = `DELETE FROM progress_sessions
    WHERE account_id IS NULL
      AND last_active_at < $1
      AND NOT EXISTS (
          SELECT 1 FROM practice_records
          WHERE practice_records.session_token = progress_sessions.token
      );`

	wordsByThemeAndType = `SELECT word_id, theme, word_type, spanish_word, english_translation
    FROM vocabulary_words
    WHERE theme = $1 AND word_type = $2;`

	templatesByThemeAndType = `SELECT template_id, theme, word_type, spanish_template, english_template
    FROM sentence_templates
    WHERE theme = $1 AND word_type = $2;`

	insertPractice = `INSERT INTO practice_records (session_token, word_id, theme, word_type)
    VALUES ($1, $2, $3, $4);`

	findPractice = `SELECT practice_id, session_token, word_id, theme, word_type, learned, practiced_at
    FROM practice_records
    WHERE session_token = $1 AND word_id = $2;`

	setPracticeLearned = `UPDATE practice_records
    SET learned = $3
    WHERE session_token = $1 AND word_id = $2;`

	learnedWordIDs = `SELECT word_id
    FROM practice_records
    WHERE session_token = ANY($1) AND word_id = ANY($2) AND learned = TRUE;`

	practiceTotals = `SELECT COUNT(*), COUNT(*) FILTER (WHERE learned)
    FROM practice_records
    WHERE session_token = ANY($1);`

	practiceByTheme = `SELECT theme, COUNT(*)
    FROM practice_records
    WHERE session_token = ANY($1)
    GROUP BY theme;`

	curatedWordExists = `SELECT EXISTS (
        SELECT 1 FROM curated_words
        WHERE account_id = $1 AND LOWER(spanish) = LOWER($2)
    );`

	insertCuratedWord = `INSERT INTO curated_words (account_id, spanish, english, word_type, themes)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (account_id, LOWER(spanish)) DO NOTHING
    RETURNING curated_word_id, account_id, spanish, english, word_type, themes, is_learned, created_at, updated_at;`

	findCuratedWord = `SELECT curated_word_id, account_id, spanish, english, word_type, themes, is_learned, created_at, updated_at
    FROM curated_words
    WHERE curated_word_id = $1 AND account_id = $2;`

	randomCuratedWord = `SELECT curated_word_id, account_id, spanish, english, word_type, themes, is_learned, created_at, updated_at
    FROM curated_words
    WHERE account_id = $1 AND is_learned = $2
    ORDER BY RANDOM()
    LIMIT 1;`

	deleteCuratedExamples = `DELETE FROM curated_examples
    WHERE curated_word_id = $1;`

	deleteCuratedAttempts = `DELETE FROM curated_practice_attempts
    WHERE curated_word_id = $1;`

	deleteCuratedWord = `DELETE FROM curated_words
    WHERE curated_word_id = $1 AND account_id = $2;`
)
