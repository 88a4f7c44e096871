package sqlinline

const QUpsertGoogleUser = `--sql 627b7576-d11b-4210-be24-69b7760c30d9
insert into users (id, google_sub, email, name, picture, locale)
values (gen_random_uuid(), $1, $2, $3, $4, $5)
on conflict (google_sub) do update
set email = excluded.email,
    name = excluded.name,
    picture = excluded.picture,
    locale = excluded.locale,
    updated_at = now()
returning id, locale;
`

const QSelectUserByID = `--sql 076ddaaa-dd23-4769-89c7-4e03f83bd6df
select id, google_sub, email, name, picture, locale, created_at, updated_at
from users
where id = $1;
`
