package authhandler

import (
	employeeshandler "appraisal-backend/lib/employees"
	usershandler "appraisal-backend/lib/users"
	authutils "appraisal-backend/lib/utils/auth-utils"
	authapimodels "appraisal-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (authapimodels.LoginResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.LoginResponse, error) {
	if err := request.Validate(); err != nil {
		return authapimodels.LoginResponse{}, err
	}
	user, err := usershandler.Instance.GetByUsername(request.Username)
	if err != nil {
		log.
			WithField("username", request.Username).
			WithError(err).
			Error("ошибка поиска пользователя при входе")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil {
		return authapimodels.LoginResponse{}, errors.New("неверное имя пользователя или пароль")
	}
	if authutils.GetMD5Hash(request.Password) != user.Password {
		return authapimodels.LoginResponse{}, errors.New("неверное имя пользователя или пароль")
	}
	if !user.Active {
		return authapimodels.LoginResponse{}, errors.New("учетная запись заблокирована")
	}
	// учетная запись с привязкой к сотруднику недействительна,
	// если сотрудник удален или имеет блокирующий статус
	name := user.Username
	if user.EmployeeID != "" {
		employee, err := employeeshandler.Instance.GetByID(user.EmployeeID)
		if err != nil {
			return authapimodels.LoginResponse{}, err
		}
		if employee == nil || employee.EmploymentStatus.IsLocking() {
			return authapimodels.LoginResponse{}, errors.New("учетная запись заблокирована")
		}
		name = employee.Name
	}

	accessToken, err := authutils.GetToken(user.ID, name, user.EmployeeID, user.Role)
	if err != nil {
		return authapimodels.LoginResponse{}, errors.Wrap(err, "ошибка выпуска токена")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, name)
	if err != nil {
		return authapimodels.LoginResponse{}, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	return authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		EmployeeID:   user.EmployeeID,
		Role:         string(user.Role),
	}, nil
}
