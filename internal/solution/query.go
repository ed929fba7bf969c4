// Package solution holds the SQL answer submitted to the webhook.
package solution

// FinalQuery lists, per department, the average employee age and the first
// ten employee names among employees with a payment above 70000, ordered by
// department id descending.
const FinalQuery = "SELECT " +
	"    d.DEPARTMENT_NAME, " +
	"    AVG(TIMESTAMPDIFF(YEAR, e.DOB, CURDATE())) AS AVERAGE_AGE, " +
	"    SUBSTRING_INDEX(GROUP_CONCAT(DISTINCT CONCAT(e.FIRST_NAME, ' ', e.LAST_NAME) ORDER BY e.FIRST_NAME, e.LAST_NAME SEPARATOR ', '), ', ', 10) AS EMPLOYEE_LIST " +
	"FROM DEPARTMENT d " +
	"JOIN EMPLOYEE e ON d.DEPARTMENT_ID = e.DEPARTMENT " +
	"JOIN PAYMENTS p ON e.EMP_ID = p.EMP_ID " +
	"WHERE p.AMOUNT > 70000 " +
	"GROUP BY d.DEPARTMENT_ID, d.DEPARTMENT_NAME " +
	"ORDER BY d.DEPARTMENT_ID DESC;"
