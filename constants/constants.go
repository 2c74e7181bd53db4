package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_USER    = "USER"
)

const (
	BOOKING_STATUS_PENDING   = "pending"
	BOOKING_STATUS_CONFIRMED = "confirmed"
	BOOKING_STATUS_CANCELLED = "cancelled"
	BOOKING_STATUS_COMPLETED = "completed"
)

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Something went wrong, please try again later"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_FOUND_RECORDS          = "No records found"
	NOT_ADMIN                  = "You do not have permission to perform this action"

	MISSING_LOGIN_INPUT        = "Email or username is required for login."
	INVALID_CREDENTIALS        = "Invalid credentials."
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated."
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"
	INVALID_TOKEN              = "Invalid token"
	PASSWORDS_DO_NOT_MATCH     = "New password and repeat password do not match."
	NEW_PASSWORD_SAME_AS_OLD   = "New password must be different from the current password."
	WRONG_CURRENT_PASSWORD     = "Current password is incorrect."
	INVALID_EMAIL              = "Invalid email address."
	INVALID_ROLE               = "Role must be ADMIN or MANAGER."

	USERNAME_ALREADY_TAKEN   = "Username already taken."
	EMAIL_ALREADY_REGISTERED = "Email already registered."
	USER_NOT_FOUND           = "User not found."

	TABLE_NOT_FOUND         = "Table not found."
	TABLE_NOT_ACTIVE        = "Table is not available for booking."
	TABLE_NUMBER_EXISTS     = "Table number already exists."
	TIME_SLOT_NOT_FOUND     = "Time slot not found."
	TIME_SLOT_NOT_ACTIVE    = "Time slot is not available."
	TIME_SLOT_EXISTS        = "Time slot already exists."
	TIME_SLOT_BAD_FORMAT    = "Time must be in HH:MM format."
	TIME_SLOT_BAD_ORDER     = "End time must be after start time."
	TIME_SLOT_OUTSIDE_HOURS = "Time slot is outside operating hours."
	CATEGORY_NOT_FOUND      = "Category not found."
	CATEGORY_NAME_EXISTS    = "Category name already exists."
	DISH_NOT_FOUND          = "Dish not found."
	DISH_NOT_AVAILABLE      = "Dish is not available."
	BOOKING_NOT_FOUND       = "Booking not found."
	TABLE_ALREADY_BOOKED    = "Table is already booked for this time slot."
	GUESTS_OVER_CAPACITY    = "Guest count exceeds table capacity."
	BOOKING_DATE_REQUIRED   = "Booking date is required."
	BOOKING_DATE_NOT_FUTURE = "Booking date must be in the future."
	BOOKING_FINALIZED       = "Booking can no longer be modified."
	INVALID_STATUS_CHANGE   = "Invalid booking status change."
	UNKNOWN_STATUS          = "Unknown booking status."
	INVALID_DATE            = "Date must be in YYYY-MM-DD format."
	UPLOADS_NOT_CONFIGURED  = "Image uploads are not configured."
)
